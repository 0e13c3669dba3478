package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

const (
	productsPerPage = 8
	latestProducts  = 5
)

func productFromForm(r *http.Request) ProductRequest {
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	stock, _ := strconv.Atoi(r.FormValue("stock"))
	return ProductRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Price:    price,
		Stock:    stock,
		Category: strings.ToLower(strings.TrimSpace(r.FormValue("category"))),
	}
}

// NewProductHandler godoc
// @Summary Create a new product
// @Description Adds a product with its photo to the catalog
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param price formData number true "Unit price"
// @Param stock formData int true "Units in stock"
// @Param category formData string true "Category"
// @Param photo formData file true "Product photo"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationResponse
// @Failure 409 {object} ErrorResponse
// @Router /product/new [post]
func NewProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := productFromForm(r)
	validationErrors := validateProduct(req)
	if len(r.MultipartForm.File["photo"]) == 0 {
		validationErrors = append(validationErrors, ValidationError{Field: "photo", Description: "Please add a photo"})
	}
	if len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	photo, err := savePhoto(r.MultipartForm)
	if err != nil {
		writeStoreError(w, r, err, "could not store photo")
		return
	}

	_, err = productRepo.Create(r.Context(), models.Product{
		Name:     req.Name,
		Photo:    photo,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		removePhoto(photo)
		writeStoreError(w, r, err, "could not create product")
		return
	}

	invalidate(r, cache.ProductKeys())
	respond(w, r, http.StatusCreated, envelope{"message": "Product Created Successfully"})
}

// GetAllProductsHandler godoc
// @Summary Search the catalog
// @Tags products
// @Produce json
// @Param search query string false "Name contains (case-insensitive)"
// @Param category query string false "Exact category"
// @Param price query number false "Maximum price"
// @Param sort query string false "Sort by price (asc|desc)"
// @Param page query int false "Page number, 8 products per page"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Router /product/all [get]
func GetAllProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if s := q.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive number")
			return
		}
		page = v
	}
	sort := q.Get("sort")
	if sort != "" && sort != "asc" && sort != "desc" {
		writeError(w, http.StatusBadRequest, "sort must be 'asc' or 'desc'")
		return
	}

	offset, limit := (page-1)*productsPerPage, productsPerPage
	filter := repo.ProductFilter{
		Name:     q.Get("search"),
		Category: strings.ToLower(q.Get("category")),
		MaxPrice: parseFloatPtr(q.Get("price")),
		Sort:     sort,
		Offset:   &offset,
		Limit:    &limit,
	}

	products, total, err := productRepo.Search(r.Context(), filter)
	if err != nil {
		writeStoreError(w, r, err, "could not search products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	respond(w, r, http.StatusOK, envelope{
		"products":  products,
		"totalPage": int(math.Ceil(float64(total) / productsPerPage)),
	})
}

// GetLatestProductsHandler godoc
// @Summary List the five newest products
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResponse
// @Router /product/latest [get]
func GetLatestProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := cached(r, cache.KeyLatestProducts, func() ([]models.Product, error) {
		return productRepo.Latest(r.Context(), latestProducts)
	})
	if err != nil {
		writeStoreError(w, r, err, "could not fetch latest products")
		return
	}
	respond(w, r, http.StatusOK, envelope{"products": products})
}

// GetCategoriesHandler godoc
// @Summary List distinct product categories
// @Tags products
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /product/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := cached(r, cache.KeyCategories, func() ([]string, error) {
		return productRepo.Categories(r.Context())
	})
	if err != nil {
		writeStoreError(w, r, err, "could not fetch categories")
		return
	}
	respond(w, r, http.StatusOK, envelope{"categories": categories})
}

// GetAdminProductsHandler godoc
// @Summary List every product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProductsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /product/admin-products [get]
func GetAdminProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := cached(r, cache.KeyAllProducts, func() ([]models.Product, error) {
		return productRepo.GetAll(r.Context())
	})
	if err != nil {
		writeStoreError(w, r, err, "could not fetch products")
		return
	}
	respond(w, r, http.StatusOK, envelope{"products": products})
}

// GetProductHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [get]
func GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := cached(r, cache.ProductKey(id), func() (models.Product, error) {
		return productRepo.GetByID(r.Context(), id)
	})
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}
	respond(w, r, http.StatusOK, envelope{"product": product})
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Only the submitted fields change; a new photo replaces the old one
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param name formData string false "Product name"
// @Param price formData number false "Unit price"
// @Param stock formData int false "Units in stock"
// @Param category formData string false "Category"
// @Param photo formData file false "Product photo"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}

	form := productFromForm(r)
	req := ProductRequest{Name: product.Name, Price: product.Price, Stock: product.Stock, Category: product.Category}
	if r.FormValue("name") != "" {
		req.Name = form.Name
	}
	if r.FormValue("price") != "" {
		req.Price = form.Price
	}
	if r.FormValue("stock") != "" {
		req.Stock = form.Stock
	}
	if r.FormValue("category") != "" {
		req.Category = form.Category
	}
	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	oldPhoto := product.Photo
	if len(r.MultipartForm.File["photo"]) > 0 {
		if product.Photo, err = savePhoto(r.MultipartForm); err != nil {
			writeStoreError(w, r, err, "could not store photo")
			return
		}
	}
	product.Name, product.Price, product.Stock, product.Category = req.Name, req.Price, req.Stock, req.Category

	if _, err := productRepo.Update(r.Context(), product); err != nil {
		if product.Photo != oldPhoto {
			removePhoto(product.Photo)
		}
		writeStoreError(w, r, err, "could not update product")
		return
	}
	if product.Photo != oldPhoto {
		removePhoto(oldPhoto)
	}

	invalidate(r, cache.ProductKeys(id))
	respond(w, r, http.StatusOK, envelope{"message": "Product Updated Successfully"})
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /product/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "could not fetch product")
		return
	}
	if err := productRepo.Delete(r.Context(), id); err != nil {
		writeStoreError(w, r, err, "could not delete product")
		return
	}
	removePhoto(product.Photo)

	invalidate(r, cache.ProductKeys(id))
	respond(w, r, http.StatusOK, envelope{"message": "Product Deleted Successfully"})
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
