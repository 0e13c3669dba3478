// Package inventory applies order-driven stock adjustments and records them
// in the movement log.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

type Options struct {
	// AllowBackorder lets a decrement take stock below zero.
	AllowBackorder bool
	Logger         logrus.FieldLogger
}

// Adjuster applies stock changes for whole orders at once.
type Adjuster struct {
	products       repo.ProductRepository
	movements      repo.MovementRepository
	allowBackorder bool
	log            logrus.FieldLogger
}

func NewAdjuster(products repo.ProductRepository, movements repo.MovementRepository, opts Options) *Adjuster {
	a := &Adjuster{
		products:       products,
		movements:      movements,
		allowBackorder: opts.AllowBackorder,
		log:            opts.Logger,
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	return a
}

// ApplyStockDecrement removes the ordered quantities from stock. Either every
// product is decremented or none is: an unknown product fails with
// repo.ErrProductNotFound, and unless backorders are allowed a shortfall fails
// with repo.ErrInsufficientStock.
func (a *Adjuster) ApplyStockDecrement(ctx context.Context, items []models.LineItem, reason string) ([]models.Product, error) {
	deltas, err := merge(items, -1)
	if err != nil {
		return nil, err
	}
	return a.apply(ctx, deltas, a.allowBackorder, reason)
}

// Restock returns the ordered quantities to stock.
func (a *Adjuster) Restock(ctx context.Context, items []models.LineItem, reason string) ([]models.Product, error) {
	deltas, err := merge(items, 1)
	if err != nil {
		return nil, err
	}
	return a.apply(ctx, deltas, true, reason)
}

func (a *Adjuster) apply(ctx context.Context, deltas []repo.StockDelta, allowNegative bool, reason string) ([]models.Product, error) {
	if len(deltas) == 0 {
		return []models.Product{}, nil
	}

	updated, err := a.products.AdjustStock(ctx, deltas, allowNegative)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	for _, d := range deltas {
		m := models.Movement{ProductID: d.ProductID, Delta: d.Delta, Reason: reason}
		if err := a.movements.Log(ctx, m); err != nil {
			// The stock change is already committed.
			a.log.WithError(err).WithField("product_id", d.ProductID).Error("could not log stock movement")
		}
	}
	for _, p := range updated {
		if p.Stock < 0 {
			a.log.WithFields(logrus.Fields{"product_id": p.ID, "stock": p.Stock}).Warn("product is backordered")
		}
	}
	return updated, nil
}

// merge folds line items into one delta per product, ordered by product id.
func merge(items []models.LineItem, sign int) ([]repo.StockDelta, error) {
	totals := map[int]int{}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", ErrInvalidQuantity, item.ProductID)
		}
		totals[item.ProductID] += item.Quantity
	}

	deltas := make([]repo.StockDelta, 0, len(totals))
	for id, qty := range totals {
		deltas = append(deltas, repo.StockDelta{ProductID: id, Delta: sign * qty})
	}
	slices.SortFunc(deltas, func(a, b repo.StockDelta) int { return a.ProductID - b.ProductID })
	return deltas, nil
}
