package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetByName(ctx context.Context, name string) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, f ProductFilter) ([]models.Product, int, error)
	Latest(ctx context.Context, n int) ([]models.Product, error)
	Find(ctx context.Context, q ProductQuery) ([]models.Product, error)
	Count(ctx context.Context, q ProductQuery) (int, error)
	Categories(ctx context.Context) ([]string, error)
	// AdjustStock applies every delta or none of them. A missing product
	// yields ErrProductNotFound; unless allowNegative is set, a delta that
	// would take stock below zero yields ErrInsufficientStock.
	AdjustStock(ctx context.Context, deltas []StockDelta, allowNegative bool) ([]models.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
	GetByID(ctx context.Context, id int) (models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, o models.Order) (models.Order, error)
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, q OrderQuery) ([]models.Order, error)
	Count(ctx context.Context, q OrderQuery) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, q UserQuery) ([]models.User, error)
	Count(ctx context.Context, q UserQuery) (int, error)
}

type MovementRepository interface {
	Log(ctx context.Context, m models.Movement) error
	GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error)
}

var queryTimeout = 3 * time.Second

// SetQueryTimeout bounds every Postgres statement issued by this package.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
