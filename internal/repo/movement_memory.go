package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log inserts a new inventory movement
func (r *InMemoryMovementRepository) Log(_ context.Context, m models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	m.ID = len(r.movements) + 1
	r.movements = append(r.movements, m)
	return nil
}

// GetByProductID returns the movements of a product, newest first, optionally filtered by date range and paginated
func (r *InMemoryMovementRepository) GetByProductID(_ context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Movement{}
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if m.ProductID != productID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) || (mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}

	return page(filtered, mf.Offset, mf.Limit), len(filtered), nil
}
