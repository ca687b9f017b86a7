package http

import (
	"net/http"
	"time"

	"storefront-api/internal/authz"
	obsmw "storefront-api/internal/observability/middleware"
	"storefront-api/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	CORSOrigins []string
	// AuthRateLimit caps register/login attempts per IP per minute.
	AuthRateLimit int
}

func NewRouter(auth service.AuthService, orders service.OrderService, products service.ProductService, guard *authz.Guard, cfg Config) http.Handler {
	h := &handlers{auth: auth, orders: orders, products: products}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   originsIfSet(cfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.WithMetrics)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Shopping API is up"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	authLimit := cfg.AuthRateLimit
	if authLimit <= 0 {
		authLimit = 20
	}
	limitAuth := httprate.LimitByIP(authLimit, 1*time.Minute)

	r.Route("/users", func(r chi.Router) {
		r.With(limitAuth).Post("/", h.register)
		r.With(limitAuth).Post("/auth", h.login)
		r.Group(func(r chi.Router) {
			r.Use(guard.Middleware)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.showUser)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/top", h.topProducts)
		r.Get("/category/{category}", h.productsByCategory)
		r.Get("/{id}", h.showProduct)
		r.With(guard.Middleware).Post("/", h.createProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(guard.Middleware)
		r.Post("/", h.createOrder)
		r.Put("/{id}", h.updateOrderStatus)
		r.Delete("/{id}", h.deleteOrder)
		r.Post("/{id}/items", h.addOrderItem)
		r.Get("/user/{userID}/current", h.currentOrder)
		r.Get("/user/{userID}/completed", h.completedOrders)
	})

	return r
}

func originsIfSet(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
