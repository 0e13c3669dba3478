package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

const (
	summaryMonths      = 6
	barShortMonths     = 6
	barLongMonths      = 12
	lineMonths         = 12
	latestTransactions = 4
)

// Options configures an Assembler.
type Options struct {
	// Now supplies the reference date; time.Now when nil.
	Now    func() time.Time
	Logger logrus.FieldLogger
}

// Assembler builds the dashboard payloads. It holds no per-request state and
// is safe for concurrent use.
type Assembler struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
	users    repo.UserRepository
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewAssembler(products repo.ProductRepository, orders repo.OrderRepository, users repo.UserRepository, opts Options) *Assembler {
	a := &Assembler{
		products: products,
		orders:   orders,
		users:    users,
		now:      opts.Now,
		log:      opts.Logger,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	return a
}

func orderTotal(o models.Order) float64    { return o.Total }
func orderDiscount(o models.Order) float64 { return o.Discount }

func ptr[T any](v T) *T { return &v }

// DashboardSummary assembles month-over-month deltas, all-time counts, the
// six-month order chart, category shares, the gender ratio and the latest
// transactions. Latest transactions are the most recently inserted orders,
// newest first; insertion order is not necessarily chronological.
func (a *Assembler) DashboardSummary(ctx context.Context) (Stats, error) {
	ref := a.now()
	thisMonth, lastMonth, window := ThisMonth(ref), PreviousMonth(ref), Window(ref, summaryMonths)

	var (
		thisMonthProducts, lastMonthProducts int
		thisMonthUsers, lastMonthUsers       int
		productsCount, usersCount, females   int
		thisMonthOrders, lastMonthOrders     []models.Order
		windowOrders, latest, allOrders      []models.Order
		categories                           []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thisMonthProducts, err = a.products.Count(gctx, repo.ProductQuery{CreatedIn: &thisMonth})
		return err
	})
	g.Go(func() (err error) {
		lastMonthProducts, err = a.products.Count(gctx, repo.ProductQuery{CreatedIn: &lastMonth})
		return err
	})
	g.Go(func() (err error) {
		thisMonthUsers, err = a.users.Count(gctx, repo.UserQuery{CreatedIn: &thisMonth})
		return err
	})
	g.Go(func() (err error) {
		lastMonthUsers, err = a.users.Count(gctx, repo.UserQuery{CreatedIn: &lastMonth})
		return err
	})
	g.Go(func() (err error) {
		thisMonthOrders, err = a.orders.Find(gctx, repo.OrderQuery{CreatedIn: &thisMonth})
		return err
	})
	g.Go(func() (err error) {
		lastMonthOrders, err = a.orders.Find(gctx, repo.OrderQuery{CreatedIn: &lastMonth})
		return err
	})
	g.Go(func() (err error) {
		windowOrders, err = a.orders.Find(gctx, repo.OrderQuery{CreatedIn: &window})
		return err
	})
	g.Go(func() (err error) {
		latest, err = a.orders.Find(gctx, repo.OrderQuery{NewestFirst: true, Limit: latestTransactions})
		return err
	})
	g.Go(func() (err error) {
		productsCount, err = a.products.Count(gctx, repo.ProductQuery{})
		return err
	})
	g.Go(func() (err error) {
		usersCount, err = a.users.Count(gctx, repo.UserQuery{})
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = a.orders.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = a.products.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		females, err = a.users.Count(gctx, repo.UserQuery{Gender: ptr(models.GenderFemale)})
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("failed to load dashboard records: %w", err)
	}

	orderCounts, err := MonthlyCounts(windowOrders, summaryMonths, ref)
	if err != nil {
		return Stats{}, err
	}
	orderRevenue, err := MonthlySums(windowOrders, summaryMonths, ref, orderTotal)
	if err != nil {
		return Stats{}, err
	}
	categoryCount, err := a.categoryShares(ctx, categories, productsCount)
	if err != nil {
		return Stats{}, err
	}

	transactions := make([]Transaction, len(latest))
	for i, o := range latest {
		transactions[i] = Transaction{
			ID:       o.ID,
			Discount: o.Discount,
			Amount:   o.Total,
			Quantity: len(o.OrderItems),
			Status:   o.Status,
		}
	}

	s := Stats{
		CategoryCount: categoryCount,
		ChangePercent: ChangePercent{
			Revenue: PercentageChange(GrossIncome(thisMonthOrders), GrossIncome(lastMonthOrders)),
			Product: PercentageChange(float64(thisMonthProducts), float64(lastMonthProducts)),
			User:    PercentageChange(float64(thisMonthUsers), float64(lastMonthUsers)),
			Order:   PercentageChange(float64(len(thisMonthOrders)), float64(len(lastMonthOrders))),
		},
		Count: Count{
			Revenue: GrossIncome(allOrders),
			Product: productsCount,
			User:    usersCount,
			Order:   len(allOrders),
		},
		Chart:             MonthlyChart{Order: orderCounts, Revenue: orderRevenue},
		UserRatio:         UserRatio{Male: usersCount - females, Female: females},
		LatestTransaction: transactions,
	}

	a.log.WithFields(logrus.Fields{
		"orders":   s.Count.Order,
		"products": s.Count.Product,
		"users":    s.Count.User,
	}).Debug("dashboard summary assembled")
	return s, nil
}

// PieCharts assembles the categorical breakdowns. The revenue distribution
// and age groups cover every order and user ever stored.
func (a *Assembler) PieCharts(ctx context.Context) (PieCharts, error) {
	ref := a.now()

	var (
		processing, shipped, delivered int
		productsCount, outOfStock      int
		admins, customers              int
		categories                     []string
		allOrders                      []models.Order
		allUsers                       []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	countStatus := func(dst *int, status models.OrderStatus) {
		g.Go(func() (err error) {
			*dst, err = a.orders.Count(gctx, repo.OrderQuery{Status: &status})
			return err
		})
	}
	countStatus(&processing, models.StatusProcessing)
	countStatus(&shipped, models.StatusShipped)
	countStatus(&delivered, models.StatusDelivered)
	g.Go(func() (err error) {
		categories, err = a.products.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		productsCount, err = a.products.Count(gctx, repo.ProductQuery{})
		return err
	})
	g.Go(func() (err error) {
		outOfStock, err = a.products.Count(gctx, repo.ProductQuery{Stock: ptr(0)})
		return err
	})
	g.Go(func() (err error) {
		allOrders, err = a.orders.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		allUsers, err = a.users.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		admins, err = a.users.Count(gctx, repo.UserQuery{Role: ptr(models.RoleAdmin)})
		return err
	})
	g.Go(func() (err error) {
		customers, err = a.users.Count(gctx, repo.UserQuery{Role: ptr(models.RoleUser)})
		return err
	})
	if err := g.Wait(); err != nil {
		return PieCharts{}, fmt.Errorf("failed to load pie chart records: %w", err)
	}

	productCategories, err := a.categoryShares(ctx, categories, productsCount)
	if err != nil {
		return PieCharts{}, err
	}

	return PieCharts{
		OrderFulfillment: OrderFulfillment{
			Processing: processing,
			Shipped:    shipped,
			Delivered:  delivered,
		},
		ProductCategories: productCategories,
		StockAvailability: StockAvailability{
			InStock:    productsCount - outOfStock,
			OutOfStock: outOfStock,
		},
		RevenueDistribution: Revenue(allOrders),
		UsersAgeGroup:       GroupByAge(allUsers, ref),
		AdminCustomer:       AdminCustomer{Admin: admins, Customer: customers},
	}, nil
}

// BarCharts assembles six-month product and user counts and twelve-month
// order counts, each fetched over its own window.
func (a *Assembler) BarCharts(ctx context.Context) (BarCharts, error) {
	ref := a.now()
	short, long := Window(ref, barShortMonths), Window(ref, barLongMonths)

	var (
		products []models.Product
		users    []models.User
		orders   []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = a.products.Find(gctx, repo.ProductQuery{CreatedIn: &short})
		return err
	})
	g.Go(func() (err error) {
		users, err = a.users.Find(gctx, repo.UserQuery{CreatedIn: &short})
		return err
	})
	g.Go(func() (err error) {
		orders, err = a.orders.Find(gctx, repo.OrderQuery{CreatedIn: &long})
		return err
	})
	if err := g.Wait(); err != nil {
		return BarCharts{}, fmt.Errorf("failed to load bar chart records: %w", err)
	}

	var (
		charts BarCharts
		err    error
	)
	if charts.Products, err = MonthlyCounts(products, barShortMonths, ref); err != nil {
		return BarCharts{}, err
	}
	if charts.Users, err = MonthlyCounts(users, barShortMonths, ref); err != nil {
		return BarCharts{}, err
	}
	if charts.Orders, err = MonthlyCounts(orders, barLongMonths, ref); err != nil {
		return BarCharts{}, err
	}
	return charts, nil
}

// LineCharts assembles twelve-month product and user counts plus order
// discount and revenue sums over one shared window.
func (a *Assembler) LineCharts(ctx context.Context) (LineCharts, error) {
	ref := a.now()
	window := Window(ref, lineMonths)

	var (
		products []models.Product
		users    []models.User
		orders   []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = a.products.Find(gctx, repo.ProductQuery{CreatedIn: &window})
		return err
	})
	g.Go(func() (err error) {
		users, err = a.users.Find(gctx, repo.UserQuery{CreatedIn: &window})
		return err
	})
	g.Go(func() (err error) {
		orders, err = a.orders.Find(gctx, repo.OrderQuery{CreatedIn: &window})
		return err
	})
	if err := g.Wait(); err != nil {
		return LineCharts{}, fmt.Errorf("failed to load line chart records: %w", err)
	}

	var (
		charts LineCharts
		err    error
	)
	if charts.Products, err = MonthlyCounts(products, lineMonths, ref); err != nil {
		return LineCharts{}, err
	}
	if charts.Users, err = MonthlyCounts(users, lineMonths, ref); err != nil {
		return LineCharts{}, err
	}
	if charts.Discount, err = MonthlySums(orders, lineMonths, ref, orderDiscount); err != nil {
		return LineCharts{}, err
	}
	if charts.Revenue, err = MonthlySums(orders, lineMonths, ref, orderTotal); err != nil {
		return LineCharts{}, err
	}
	return charts, nil
}

func (a *Assembler) categoryShares(ctx context.Context, categories []string, total int) ([]CategoryCount, error) {
	return Distribute(categories, total, func(category string) (int, error) {
		return a.products.Count(ctx, repo.ProductQuery{Category: &category})
	})
}
