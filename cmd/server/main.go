package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/internal/api"
	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/cart"
	"github.com/tjtrack/tjtrack-web/internal/config"
	"github.com/tjtrack/tjtrack-web/internal/db"
	"github.com/tjtrack/tjtrack-web/internal/handlers"
	"github.com/tjtrack/tjtrack-web/internal/policy"
	"github.com/tjtrack/tjtrack-web/internal/session"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg.App.Dev)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	conn, err := db.Open(cfg.Session)
	if err != nil {
		sugar.Fatalw("session database unavailable", "err", err)
	}

	sessions, err := session.NewStore(conn, sugar)
	if err != nil {
		sugar.Fatalw("session store init failed", "err", err)
	}

	client := api.New(cfg.API.BaseURL, sugar).WithTimeout(time.Duration(cfg.API.Timeout) * time.Second)
	snapshots := cache.NewStore()

	base := &handlers.Base{
		API:      client,
		Sessions: sessions,
		Cookies:  &auth.Cookies{Secret: cfg.Session.Secret, Store: sessions},
		Cache:    snapshots,
		Cart:     cart.New(client, snapshots),
		Log:      sugar,
	}

	app := NewApp(base.Cookies, policy.NewRouterConfig(base))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      withLogging(sugar, app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		sugar.Infow("server starting", "port", cfg.Server.Port, "api", cfg.API.BaseURL, "dev", cfg.App.Dev)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("shutdown error", "err", err)
	}
	sugar.Info("server stopped gracefully")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// withLogging adds request logging middleware.
func withLogging(log *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Infow("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
