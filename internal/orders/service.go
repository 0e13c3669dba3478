// Package orders runs the order lifecycle: placement with stock decrement,
// status processing, deletion, and cached reads.
package orders

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// StockAdjuster is the part of inventory.Adjuster the order workflow needs.
type StockAdjuster interface {
	ApplyStockDecrement(ctx context.Context, items []models.LineItem, reason string) ([]models.Product, error)
	Restock(ctx context.Context, items []models.LineItem, reason string) ([]models.Product, error)
}

type Service struct {
	orders repo.OrderRepository
	stock  StockAdjuster
	cache  *cache.Loader
	log    logrus.FieldLogger
}

// NewService builds the workflow. loader must be shared with every other
// reader of the product keys so invalidations reach their loads.
func NewService(orders repo.OrderRepository, stock StockAdjuster, loader *cache.Loader, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if loader == nil {
		loader = cache.NewLoader(cache.Nop{}, log)
	}
	return &Service{orders: orders, stock: stock, cache: loader, log: log}
}

// Place reserves stock for every line item and then stores the order. If the
// order cannot be stored the reservation is returned to stock.
func (s *Service) Place(ctx context.Context, o models.Order) (models.Order, error) {
	reason := "order for " + o.User
	updated, err := s.stock.ApplyStockDecrement(ctx, o.OrderItems, reason)
	if err != nil {
		return models.Order{}, err
	}

	ids := make([]int, len(updated))
	for i, p := range updated {
		ids[i] = p.ID
	}
	productKeys := cache.ProductKeys(ids...)

	o.Status = models.StatusProcessing
	created, err := s.orders.Create(ctx, o)
	if err != nil {
		defer s.cache.Invalidate(ctx, productKeys...)
		if _, restockErr := s.stock.Restock(ctx, o.OrderItems, reason+" (rollback)"); restockErr != nil {
			s.log.WithError(restockErr).WithField("user", o.User).Error("could not return stock after failed order")
		}
		return models.Order{}, fmt.Errorf("failed to store order: %w", err)
	}

	s.cache.Invalidate(ctx, append(cache.OrderKeys(created.User, created.ID), productKeys...)...)
	return created, nil
}

// Process advances the order one step along Processing, Shipped, Delivered.
func (s *Service) Process(ctx context.Context, id int) (models.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	o.Status = o.Status.Next()
	updated, err := s.orders.Update(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	s.cache.Invalidate(ctx, cache.OrderKeys(updated.User, updated.ID)...)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.OrderKeys(o.User, o.ID)...)
	return nil
}

func (s *Service) Get(ctx context.Context, id int) (models.Order, error) {
	return cache.Load(ctx, s.cache, cache.OrderKey(id), func() (models.Order, error) {
		return s.orders.GetByID(ctx, id)
	})
}

func (s *Service) Mine(ctx context.Context, user string) ([]models.Order, error) {
	return cache.Load(ctx, s.cache, cache.MyOrdersKey(user), func() ([]models.Order, error) {
		return s.orders.Find(ctx, repo.OrderQuery{User: &user})
	})
}

func (s *Service) All(ctx context.Context) ([]models.Order, error) {
	return cache.Load(ctx, s.cache, cache.KeyAllOrders, func() ([]models.Order, error) {
		return s.orders.GetAll(ctx)
	})
}
