package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/shop-backoffice/docs"
	"github.com/rogerio-castellano/shop-backoffice/internal/http/handlers"
	mw "github.com/rogerio-castellano/shop-backoffice/internal/http/middleware"
	rl "github.com/rogerio-castellano/shop-backoffice/internal/http/rate_limiter"
)

type Options struct {
	CORSOrigin string
	UploadDir  string
	// Limiter throttles every route when set.
	Limiter *rl.Limiter
	Logger  logrus.FieldLogger
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.UploadDir == "" {
		opts.UploadDir = "uploads"
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Throttling keys on the socket peer, so it runs before RealIP rewrites
	// RemoteAddr from client-supplied headers.
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter))
	}
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	if opts.CORSOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{opts.CORSOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("API Working with /api/v1"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/new", handlers.NewUserHandler)
			r.Post("/login", handlers.LoginHandler)
			r.With(mw.AdminOnly).Get("/all", handlers.GetAllUsersHandler)
			r.Get("/{id}", handlers.GetUserHandler)
			r.With(mw.AdminOnly).Delete("/{id}", handlers.DeleteUserHandler)
		})

		r.Route("/product", func(r chi.Router) {
			r.Get("/all", handlers.GetAllProductsHandler)
			r.Get("/latest", handlers.GetLatestProductsHandler)
			r.Get("/categories", handlers.GetCategoriesHandler)
			r.Get("/{id}", handlers.GetProductHandler)

			r.Group(func(r chi.Router) {
				r.Use(mw.AdminOnly)
				r.Post("/new", handlers.NewProductHandler)
				r.Post("/import", handlers.ImportProductsHandler)
				r.Get("/admin-products", handlers.GetAdminProductsHandler)
				r.Put("/{id}", handlers.UpdateProductHandler)
				r.Delete("/{id}", handlers.DeleteProductHandler)
				r.Get("/{id}/movements", handlers.GetMovementsHandler)
				r.Get("/{id}/movements/export", handlers.ExportMovementsHandler)
			})
		})

		r.Route("/order", func(r chi.Router) {
			r.Post("/new", handlers.NewOrderHandler)
			r.Get("/my", handlers.MyOrdersHandler)
			r.Get("/{id}", handlers.GetOrderHandler)

			r.Group(func(r chi.Router) {
				r.Use(mw.AdminOnly)
				r.Get("/all", handlers.AllOrdersHandler)
				r.Put("/{id}", handlers.ProcessOrderHandler)
				r.Delete("/{id}", handlers.DeleteOrderHandler)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(mw.AdminOnly)
			r.Get("/stats", handlers.DashboardStatsHandler)
			r.Get("/pie", handlers.DashboardPieHandler)
			r.Get("/bar", handlers.DashboardBarHandler)
			r.Get("/line", handlers.DashboardLineHandler)
		})
	})

	return r
}
