package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// InMemoryOrderRepository keeps orders in insertion order.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
		nextID: 1,
	}
}

func cloneOrder(o models.Order) models.Order {
	o.OrderItems = slices.Clone(o.OrderItems)
	return o
}

func (r *InMemoryOrderRepository) Create(_ context.Context, o models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	if o.Status == "" {
		o.Status = models.StatusProcessing
	}
	o.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, cloneOrder(o))
	return o, nil
}

func (r *InMemoryOrderRepository) GetByID(_ context.Context, id int) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return cloneOrder(r.orders[i]), nil
	}
	return models.Order{}, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.Find(ctx, OrderQuery{})
}

func (r *InMemoryOrderRepository) Update(_ context.Context, o models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(o.ID)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	o.CreatedAt = r.orders[i].CreatedAt
	o.UpdatedAt = time.Now().UTC()
	r.orders[i] = cloneOrder(o)
	return o, nil
}

func (r *InMemoryOrderRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	r.orders = slices.Delete(r.orders, i, i+1)
	return nil
}

func (r *InMemoryOrderRepository) Find(_ context.Context, q OrderQuery) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []models.Order{}
	for i := range r.orders {
		if q.Limit > 0 && len(found) == q.Limit {
			break
		}
		o := r.orders[i]
		if q.NewestFirst {
			o = r.orders[len(r.orders)-1-i]
		}
		if q.matches(o) {
			found = append(found, cloneOrder(o))
		}
	}
	return found, nil
}

func (r *InMemoryOrderRepository) Count(_ context.Context, q OrderQuery) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, o := range r.orders {
		if q.matches(o) {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = []models.Order{}
}

func (r *InMemoryOrderRepository) indexOf(id int) int {
	for i, o := range r.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
