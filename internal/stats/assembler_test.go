package stats_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
	"github.com/rogerio-castellano/shop-backoffice/internal/stats"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	year := 2026
	if month > time.October {
		year = 2025
	}
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

type fixture struct {
	products *repo.InMemoryProductRepository
	orders   *repo.InMemoryOrderRepository
	users    *repo.InMemoryUserRepository
}

func newFixture() fixture {
	return fixture{
		products: repo.NewInMemoryProductRepository(),
		orders:   repo.NewInMemoryOrderRepository(),
		users:    repo.NewInMemoryUserRepository(),
	}
}

func (f fixture) assembler() *stats.Assembler {
	return stats.NewAssembler(f.products, f.orders, f.users, stats.Options{Now: func() time.Time { return now }})
}

func (f fixture) order(t *testing.T, created time.Time, total float64, status models.OrderStatus, items int) {
	t.Helper()
	o := models.Order{Total: total, Discount: total / 10, Status: status, CreatedAt: created}
	for i := 0; i < items; i++ {
		o.OrderItems = append(o.OrderItems, models.LineItem{ProductID: i + 1, Quantity: 1})
	}
	_, err := f.orders.Create(context.Background(), o)
	require.NoError(t, err)
}

func (f fixture) product(t *testing.T, name, category string, stock int, created time.Time) {
	t.Helper()
	_, err := f.products.Create(context.Background(), models.Product{Name: name, Category: category, Stock: stock, Price: 10, CreatedAt: created})
	require.NoError(t, err)
}

func (f fixture) user(t *testing.T, id, gender, role string, dob, created time.Time) {
	t.Helper()
	_, err := f.users.Create(context.Background(), models.User{
		ID: id, Name: id, Email: id + "@shop.test", Gender: gender, Role: role, DOB: dob, CreatedAt: created,
	})
	require.NoError(t, err)
}

func TestDashboardSummary(t *testing.T) {
	f := newFixture()
	f.order(t, day(time.October, 2), 100, models.StatusProcessing, 2)
	f.order(t, day(time.September, 3), 50, models.StatusDelivered, 1)
	f.order(t, day(time.October, 10), 200, models.StatusShipped, 3)
	f.order(t, time.Date(2026, time.September, 30, 23, 30, 0, 0, time.UTC), 300, models.StatusDelivered, 1)
	f.order(t, day(time.September, 15), 75, models.StatusProcessing, 1)

	f.product(t, "Laptop", "electronics", 4, day(time.October, 1))
	f.product(t, "Camera", "electronics", 0, day(time.September, 2))
	f.product(t, "Novel", "books", 9, day(time.August, 20))

	f.user(t, "u1", models.GenderFemale, models.RoleAdmin, day(time.January, 1).AddDate(-30, 0, 0), day(time.October, 5))
	f.user(t, "u2", models.GenderMale, models.RoleUser, day(time.January, 1).AddDate(-15, 0, 0), day(time.September, 5))
	f.user(t, "u3", models.GenderMale, models.RoleUser, day(time.January, 1).AddDate(-50, 0, 0), day(time.September, 6))

	s, err := f.assembler().DashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, s.Count.Order)
	assert.Equal(t, 725.0, s.Count.Revenue)
	assert.Equal(t, 3, s.Count.Product)
	assert.Equal(t, 3, s.Count.User)

	assert.InDelta(t, stats.PercentageChange(2, 3), s.ChangePercent.Order, 1e-9)
	assert.InDelta(t, stats.PercentageChange(300, 425), s.ChangePercent.Revenue, 1e-9)
	assert.InDelta(t, stats.PercentageChange(1, 1), s.ChangePercent.Product, 1e-9)
	assert.InDelta(t, stats.PercentageChange(1, 2), s.ChangePercent.User, 1e-9)

	assert.Equal(t, []int{0, 0, 0, 0, 3, 2}, s.Chart.Order)
	assert.Equal(t, []float64{0, 0, 0, 0, 425, 300}, s.Chart.Revenue)

	assert.Equal(t, []stats.CategoryCount{{"books": 33}, {"electronics": 67}}, s.CategoryCount)
	assert.Equal(t, stats.UserRatio{Male: 2, Female: 1}, s.UserRatio)

	require.Len(t, s.LatestTransaction, 4)
	first := s.LatestTransaction[0]
	assert.Equal(t, 75.0, first.Amount)
	assert.Equal(t, 7.5, first.Discount)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, models.StatusProcessing, first.Status)
	amounts := make([]float64, len(s.LatestTransaction))
	for i, tx := range s.LatestTransaction {
		amounts[i] = tx.Amount
	}
	assert.Equal(t, []float64{75, 300, 200, 50}, amounts, "the last four inserted orders, newest first")
}

func TestDashboardSummary_EmptyStore(t *testing.T) {
	s, err := newFixture().assembler().DashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, make([]int, 6), s.Chart.Order)
	assert.Equal(t, make([]float64, 6), s.Chart.Revenue)
	assert.Empty(t, s.CategoryCount)
	assert.Empty(t, s.LatestTransaction)
	assert.Zero(t, s.ChangePercent)
}

func TestPieCharts(t *testing.T) {
	f := newFixture()
	f.order(t, day(time.October, 2), 1000, models.StatusProcessing, 1)
	f.order(t, day(time.March, 2), 500, models.StatusShipped, 1)
	f.order(t, day(time.December, 2), 500, models.StatusDelivered, 1)
	f.order(t, day(time.January, 2), 0, models.StatusDelivered, 1)

	f.product(t, "Laptop", "electronics", 4, day(time.October, 1))
	f.product(t, "Camera", "electronics", 0, day(time.September, 2))
	f.product(t, "Novel", "books", 0, day(time.August, 20))
	f.product(t, "Atlas", "books", 3, day(time.August, 21))

	f.user(t, "teen", models.GenderMale, models.RoleUser, time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), day(time.October, 1))
	f.user(t, "adult", models.GenderFemale, models.RoleAdmin, time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), day(time.October, 1))
	f.user(t, "old", models.GenderMale, models.RoleUser, time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), day(time.October, 1))

	charts, err := f.assembler().PieCharts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, stats.OrderFulfillment{Processing: 1, Shipped: 1, Delivered: 2}, charts.OrderFulfillment)
	assert.Equal(t, []stats.CategoryCount{{"books": 50}, {"electronics": 50}}, charts.ProductCategories)
	assert.Equal(t, stats.StockAvailability{InStock: 2, OutOfStock: 2}, charts.StockAvailability)
	assert.Equal(t, stats.AgeGroups{Teen: 1, Adult: 1, Old: 1}, charts.UsersAgeGroup)
	assert.Equal(t, stats.AdminCustomer{Admin: 1, Customer: 2}, charts.AdminCustomer)

	rd := charts.RevenueDistribution
	assert.Equal(t, 600.0, rd.MarketingCost)
	assert.Equal(t, 200.0, rd.Discount)
	assert.Equal(t, 2000.0-200-600, rd.NetMargin)
}

func TestBarCharts(t *testing.T) {
	f := newFixture()
	f.product(t, "Laptop", "electronics", 1, day(time.October, 1))
	f.product(t, "Camera", "electronics", 1, day(time.May, 1))
	f.product(t, "Archived", "electronics", 1, day(time.April, 30))

	f.user(t, "u1", models.GenderMale, models.RoleUser, day(time.January, 1), day(time.August, 1))

	f.order(t, day(time.November, 1), 10, models.StatusDelivered, 1)
	f.order(t, day(time.October, 1), 10, models.StatusDelivered, 1)
	// Same calendar month a year earlier, outside the twelve month window.
	f.order(t, time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), 10, models.StatusDelivered, 1)

	charts, err := f.assembler().BarCharts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 0, 0, 0, 1}, charts.Products)
	assert.Equal(t, []int{0, 0, 0, 1, 0, 0}, charts.Users)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, charts.Orders)
}

func TestLineCharts(t *testing.T) {
	f := newFixture()
	f.product(t, "Laptop", "electronics", 1, day(time.December, 1))
	f.user(t, "u1", models.GenderMale, models.RoleUser, day(time.January, 1), day(time.October, 1))
	f.order(t, day(time.October, 1), 100, models.StatusDelivered, 1)
	f.order(t, day(time.October, 3), 50, models.StatusDelivered, 1)
	f.order(t, day(time.June, 3), 20, models.StatusDelivered, 1)

	charts, err := f.assembler().LineCharts(context.Background())
	require.NoError(t, err)

	require.Len(t, charts.Revenue, 12)
	assert.Equal(t, 1, charts.Products[1])
	assert.Equal(t, 1, charts.Users[11])
	assert.Equal(t, 150.0, charts.Revenue[11])
	assert.Equal(t, 20.0, charts.Revenue[7])
	assert.InDelta(t, 15.0, charts.Discount[11], 1e-9)
	assert.InDelta(t, 2.0, charts.Discount[7], 1e-9)
}

type failingOrders struct {
	*repo.InMemoryOrderRepository
	err error
}

func (f failingOrders) GetAll(context.Context) ([]models.Order, error) {
	return nil, f.err
}

func TestAssembler_PropagatesStoreErrors(t *testing.T) {
	f := newFixture()
	boom := errors.New("connection reset")
	a := stats.NewAssembler(f.products, failingOrders{f.orders, boom}, f.users, stats.Options{Now: func() time.Time { return now }})

	_, err := a.DashboardSummary(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = a.PieCharts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAssembler_ConcurrentRequests(t *testing.T) {
	f := newFixture()
	for i := 0; i < 20; i++ {
		f.order(t, day(time.October, 1+i%10), float64(i), models.StatusProcessing, 1)
		f.product(t, fmt.Sprintf("p%d", i), fmt.Sprintf("c%d", i%3), i%2, day(time.September, 1+i))
	}
	a := f.assembler()

	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := a.DashboardSummary(context.Background())
			errs <- err
		}()
	}
	for i := 0; i < 10; i++ {
		assert.NoError(t, <-errs)
	}
}
