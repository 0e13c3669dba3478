package stats

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

var marketingShare = decimal.NewFromFloat(0.30)

// RevenueDistribution splits gross income into its cost components.
//
// MarketingCost is a fixed 30% allocation of gross income, and NetMargin is
// whatever remains after every other component; neither is measured.
type RevenueDistribution struct {
	NetMargin      float64 `json:"netMargin"`
	Discount       float64 `json:"discount"`
	ProductionCost float64 `json:"productionCost"`
	Burnt          float64 `json:"burnt"`
	MarketingCost  float64 `json:"marketingCost"`
}

// Revenue computes the distribution in one pass over orders.
func Revenue(orders []models.Order) RevenueDistribution {
	var gross, discount, shipping, tax decimal.Decimal
	for _, o := range orders {
		gross = gross.Add(decimal.NewFromFloat(o.Total))
		discount = discount.Add(decimal.NewFromFloat(o.Discount))
		shipping = shipping.Add(decimal.NewFromFloat(o.ShippingCharges))
		tax = tax.Add(decimal.NewFromFloat(o.Tax))
	}
	marketing := gross.Mul(marketingShare).Round(0)
	net := gross.Sub(discount).Sub(shipping).Sub(tax).Sub(marketing)

	return RevenueDistribution{
		NetMargin:      net.InexactFloat64(),
		Discount:       discount.InexactFloat64(),
		ProductionCost: shipping.InexactFloat64(),
		Burnt:          tax.InexactFloat64(),
		MarketingCost:  marketing.InexactFloat64(),
	}
}

// GrossIncome sums order totals.
func GrossIncome(orders []models.Order) float64 {
	var gross decimal.Decimal
	for _, o := range orders {
		gross = gross.Add(decimal.NewFromFloat(o.Total))
	}
	return gross.InexactFloat64()
}
