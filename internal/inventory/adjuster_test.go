package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/shop-backoffice/internal/inventory"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

func setup(t *testing.T, allowBackorder bool, stocks ...int) (*inventory.Adjuster, *repo.InMemoryProductRepository, *repo.InMemoryMovementRepository) {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	movements := repo.NewInMemoryMovementRepository()
	for i, stock := range stocks {
		_, err := products.Create(context.Background(), models.Product{Name: fmt.Sprintf("product-%d", i+1), Price: 5, Stock: stock, Category: "misc"})
		require.NoError(t, err)
	}
	return inventory.NewAdjuster(products, movements, inventory.Options{AllowBackorder: allowBackorder}), products, movements
}

func stockOf(t *testing.T, products repo.ProductRepository, id int) int {
	t.Helper()
	p, err := products.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p.Stock
}

func TestApplyStockDecrement(t *testing.T) {
	adj, products, movements := setup(t, false, 10, 4)

	updated, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 4},
	}, "order 1")
	require.NoError(t, err)
	require.Len(t, updated, 2)

	assert.Equal(t, 7, stockOf(t, products, 1))
	assert.Equal(t, 0, stockOf(t, products, 2))

	logged, total, err := movements.GetByProductID(context.Background(), 1, repo.MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, -3, logged[0].Delta)
	assert.Equal(t, "order 1", logged[0].Reason)
}

func TestApplyStockDecrement_MergesRepeatedProducts(t *testing.T) {
	adj, products, _ := setup(t, false, 10)

	_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 5},
	}, "order 1")
	require.NoError(t, err)
	assert.Equal(t, 3, stockOf(t, products, 1))
}

func TestApplyStockDecrement_UnknownProductLeavesStockUntouched(t *testing.T) {
	adj, products, movements := setup(t, false, 10)

	_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 99, Quantity: 1},
	}, "order 1")
	require.ErrorIs(t, err, repo.ErrProductNotFound)
	assert.Contains(t, err.Error(), "99")

	assert.Equal(t, 10, stockOf(t, products, 1))
	_, total, err := movements.GetByProductID(context.Background(), 1, repo.MovementFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestApplyStockDecrement_InsufficientStock(t *testing.T) {
	adj, products, _ := setup(t, false, 5, 1)

	_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 2},
	}, "order 1")
	require.ErrorIs(t, err, repo.ErrInsufficientStock)
	assert.Equal(t, 5, stockOf(t, products, 1))
	assert.Equal(t, 1, stockOf(t, products, 2))
}

func TestApplyStockDecrement_Backorder(t *testing.T) {
	adj, products, _ := setup(t, true, 1)

	updated, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{{ProductID: 1, Quantity: 3}}, "order 1")
	require.NoError(t, err)
	assert.Equal(t, -2, updated[0].Stock)
	assert.Equal(t, -2, stockOf(t, products, 1))
}

func TestApplyStockDecrement_InvalidQuantity(t *testing.T) {
	adj, products, _ := setup(t, false, 4)

	for _, qty := range []int{0, -1} {
		_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{{ProductID: 1, Quantity: qty}}, "order 1")
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	}
	assert.Equal(t, 4, stockOf(t, products, 1))
}

func TestApplyStockDecrement_EmptyOrder(t *testing.T) {
	adj, _, _ := setup(t, false)

	updated, err := adj.ApplyStockDecrement(context.Background(), nil, "order 1")
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestRestock(t *testing.T) {
	adj, products, movements := setup(t, false, 2)

	_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{{ProductID: 1, Quantity: 2}}, "order 1")
	require.NoError(t, err)
	_, err = adj.Restock(context.Background(), []models.LineItem{{ProductID: 1, Quantity: 2}}, "order 1 cancelled")
	require.NoError(t, err)

	assert.Equal(t, 2, stockOf(t, products, 1))
	logged, _, err := movements.GetByProductID(context.Background(), 1, repo.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, logged, 2)
	assert.Equal(t, 2, logged[0].Delta, "newest movement first")
}

func TestApplyStockDecrement_ConcurrentOrdersForLastUnit(t *testing.T) {
	adj, products, _ := setup(t, false, 1)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		shortfall int
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{{ProductID: 1, Quantity: 1}}, fmt.Sprintf("order %d", n))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, repo.ErrInsufficientStock):
				shortfall++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, shortfall)
	assert.Equal(t, 0, stockOf(t, products, 1))
}

func TestApplyStockDecrement_ConcurrentBackordersLoseNoUpdate(t *testing.T) {
	adj, products, _ := setup(t, true, 1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := adj.ApplyStockDecrement(context.Background(), []models.LineItem{{ProductID: 1, Quantity: 1}}, "order")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, -49, stockOf(t, products, 1))
}
