package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/internal/authz"
	"storefront-api/internal/cache"
	"storefront-api/internal/config"
	"storefront-api/internal/observability/logging"
	"storefront-api/internal/observability/metrics"
	"storefront-api/internal/service"
	impl "storefront-api/internal/service/impl"
	"storefront-api/internal/store"
	httpx "storefront-api/internal/transport/http"
	"storefront-api/pkg/db"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "storefront",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
		FilePath:    os.Getenv("LOG_FILE"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()

	gdb, err := db.OpenGorm(db.Config{
		DSN:             cfg.DatabaseURL,
		LogSQL:          cfg.LogSQL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)
	if err := st.AutoMigrate(context.Background()); err != nil {
		logger.Error("automigrate", "error", err)
		os.Exit(1)
	}

	var productCache service.ProductCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		productCache = cache.NewRedisProductCache(rdb, cfg.CacheTTL)
		logger.Info("product cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	metrics.MustRegister("storefront")

	passwords := impl.NewPasswordServiceBcrypt(cfg.PasswordPepper, cfg.BcryptCost)
	tokens := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		SigningKey: []byte(cfg.JWTSecret),
		TTL:        cfg.AccessTTL,
	})
	auth := impl.NewAuthServiceImpl(st, passwords, tokens)
	orders := impl.NewOrderServiceImpl(st, impl.PermissivePolicy{})
	products := impl.NewProductServiceImpl(st, productCache)

	guard := authz.NewGuard(tokens)
	router := httpx.NewRouter(auth, orders, products, guard, httpx.Config{
		CORSOrigins:   cfg.CORSOrigins,
		AuthRateLimit: cfg.AuthRateLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("storefront listening", "addr", srv.Addr, "issuer", cfg.Issuer)
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
