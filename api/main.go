package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/auth"
	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/config"
	"github.com/rogerio-castellano/shop-backoffice/internal/db"
	"github.com/rogerio-castellano/shop-backoffice/internal/http/handlers"
	mw "github.com/rogerio-castellano/shop-backoffice/internal/http/middleware"
	rl "github.com/rogerio-castellano/shop-backoffice/internal/http/rate_limiter"
	"github.com/rogerio-castellano/shop-backoffice/internal/http/router"
	"github.com/rogerio-castellano/shop-backoffice/internal/inventory"
	"github.com/rogerio-castellano/shop-backoffice/internal/logging"
	"github.com/rogerio-castellano/shop-backoffice/internal/orders"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
	"github.com/rogerio-castellano/shop-backoffice/internal/stats"
)

type repositories struct {
	products  repo.ProductRepository
	orders    repo.OrderRepository
	users     repo.UserRepository
	movements repo.MovementRepository
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repositories, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		return repositories{
			products:  repo.NewInMemoryProductRepository(),
			orders:    repo.NewInMemoryOrderRepository(),
			users:     repo.NewInMemoryUserRepository(),
			movements: repo.NewInMemoryMovementRepository(),
		}, func() {}, nil
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return repositories{}, nil, err
	}
	if err := db.Migrate(ctx, database); err != nil {
		database.Close()
		return repositories{}, nil, err
	}
	repo.SetQueryTimeout(cfg.QueryTimeout)
	return repositories{
		products:  repo.NewPostgresProductRepository(database),
		orders:    repo.NewPostgresOrderRepository(database),
		users:     repo.NewPostgresUserRepository(database),
		movements: repo.NewPostgresMovementRepository(database),
	}, func() { database.Close() }, nil
}

func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache {
	case config.CacheMemory:
		return cache.NewMemoryCache(), func() {}, nil
	case config.CacheNone:
		return cache.Nop{}, func() {}, nil
	}
	rdb, err := cache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCache(rdb), func() { rdb.Close() }, nil
}

// @title Shop Back Office API
// @version 1.0
// @description REST API for the shop catalog, orders, users and the admin analytics dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Could not open storage: %v", err)
	}
	defer closeRepos()

	store, closeCache, err := openCache(ctx, cfg)
	if err != nil {
		logger.Fatalf("Could not connect to cache: %v", err)
	}
	defer closeCache()
	responseCache := cache.NewLoader(store, logger.WithField("component", "cache"))

	auth.Configure(cfg.JWTSecret, cfg.JWTTTL)

	adjuster := inventory.NewAdjuster(repos.products, repos.movements, inventory.Options{
		AllowBackorder: cfg.AllowBackorder,
		Logger:         logger.WithField("component", "inventory"),
	})
	assembler := stats.NewAssembler(repos.products, repos.orders, repos.users, stats.Options{
		Logger: logger.WithField("component", "stats"),
	})

	handlers.SetProductRepo(repos.products)
	handlers.SetMovementRepo(repos.movements)
	handlers.SetUserRepo(repos.users)
	handlers.SetOrderService(orders.NewService(repos.orders, adjuster, responseCache, logger.WithField("component", "orders")))
	handlers.SetStatsAssembler(assembler)
	handlers.SetCache(responseCache)
	handlers.SetLogger(logger)
	handlers.SetUploadDir(cfg.UploadDir)
	mw.SetUserRepo(repos.users)

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	cleanup := limiter.StartCleanup()
	defer cleanup.Stop()

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			CORSOrigin: cfg.CORSOrigin,
			UploadDir:  cfg.UploadDir,
			Limiter:    limiter,
			Logger:     logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
