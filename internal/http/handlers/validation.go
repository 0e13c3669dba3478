package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ValidationError{Field: "stock", Description: "Stock cannot be negative"})
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Description: "Category is required"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(o.User) == "" {
		errs = append(errs, ValidationError{Field: "user", Description: "User is required"})
	}
	if len(o.OrderItems) == 0 {
		errs = append(errs, ValidationError{Field: "orderItems", Description: "At least one order item is required"})
	}
	for i, item := range o.OrderItems {
		if item.ProductID <= 0 {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("orderItems[%d].productId", i), Description: "Product is required"})
		}
		if item.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("orderItems[%d].quantity", i), Description: "Quantity must be greater than zero"})
		}
	}
	if o.Subtotal <= 0 {
		errs = append(errs, ValidationError{Field: "subtotal", Description: "Subtotal must be greater than zero"})
	}
	if o.Tax <= 0 {
		errs = append(errs, ValidationError{Field: "tax", Description: "Tax must be greater than zero"})
	}
	if o.Total <= 0 {
		errs = append(errs, ValidationError{Field: "total", Description: "Total must be greater than zero"})
	}
	if o.ShippingCharges < 0 || o.Discount < 0 {
		errs = append(errs, ValidationError{Field: "shippingCharges", Description: "Charges and discount cannot be negative"})
	}
	s := o.ShippingInfo
	if s.Address == "" || s.City == "" || s.State == "" || s.Country == "" || s.PinCode == "" {
		errs = append(errs, ValidationError{Field: "shippingInfo", Description: "Shipping address is incomplete"})
	}
	if s.DeliveryMode == "" {
		errs = append(errs, ValidationError{Field: "shippingInfo.deliveryMode", Description: "Delivery mode is required"})
	}
	return errs
}

var dobLayouts = []string{time.DateOnly, time.RFC3339}

func parseDOB(s string) (time.Time, bool) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateUser(u UserRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(u.ID) == "" {
		errs = append(errs, ValidationError{Field: "_id", Description: "ID is required"})
	}
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	if !strings.Contains(u.Email, "@") {
		errs = append(errs, ValidationError{Field: "email", Description: "A valid email is required"})
	}
	if u.Gender != models.GenderMale && u.Gender != models.GenderFemale {
		errs = append(errs, ValidationError{Field: "gender", Description: "Gender must be male or female"})
	}
	if _, ok := parseDOB(u.DOB); !ok {
		errs = append(errs, ValidationError{Field: "dob", Description: "Date of birth must be YYYY-MM-DD"})
	}
	return errs
}
