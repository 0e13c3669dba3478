package repo

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if strings.EqualFold(existing.Name, p.Name) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByName(_ context.Context, name string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	p.CreatedAt = r.products[i].CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.products[i] = p
	return p, nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = slices.Delete(r.products, i, i+1)
	return nil
}

func (r *InMemoryProductRepository) Search(_ context.Context, f ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	var filtered []models.Product
	for _, p := range r.products {
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	r.mu.RUnlock()

	switch f.Sort {
	case "asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	return page(filtered, f.Offset, f.Limit), len(filtered), nil
}

// Latest returns up to n products, newest first.
func (r *InMemoryProductRepository) Latest(_ context.Context, n int) ([]models.Product, error) {
	r.mu.RLock()
	latest := slices.Clone(r.products)
	r.mu.RUnlock()

	sort.SliceStable(latest, func(i, j int) bool { return latest[i].CreatedAt.After(latest[j].CreatedAt) })
	if n > 0 && len(latest) > n {
		latest = latest[:n]
	}
	return latest, nil
}

func (r *InMemoryProductRepository) Find(_ context.Context, q ProductQuery) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []models.Product{}
	for _, p := range r.products {
		if q.matches(p) {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *InMemoryProductRepository) Count(ctx context.Context, q ProductQuery) (int, error) {
	found, err := r.Find(ctx, q)
	return len(found), err
}

// Categories returns the distinct product categories, sorted.
func (r *InMemoryProductRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// AdjustStock validates the whole batch under the write lock before applying any delta.
func (r *InMemoryProductRepository) AdjustStock(_ context.Context, deltas []StockDelta, allowNegative bool) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := map[int]int{}
	for _, d := range deltas {
		i := r.indexOf(d.ProductID)
		if i < 0 {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, d.ProductID)
		}
		pending[i] += d.Delta
		if !allowNegative && r.products[i].Stock+pending[i] < 0 {
			return nil, fmt.Errorf("%w: product %d has %d, needs %d", ErrInsufficientStock, d.ProductID, r.products[i].Stock, -pending[i])
		}
	}

	now := time.Now().UTC()
	updated := make([]models.Product, 0, len(deltas))
	for _, d := range deltas {
		i := r.indexOf(d.ProductID)
		r.products[i].Stock += d.Delta
		r.products[i].UpdatedAt = now
		updated = append(updated, r.products[i])
	}
	return updated, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

func (r *InMemoryProductRepository) indexOf(id int) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
