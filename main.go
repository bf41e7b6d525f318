package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/configs"
	"storefront/routes"
	"storefront/services"
	"storefront/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := configs.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	stores, err := configs.OpenStores(cfg, logger)
	if err != nil {
		logger.Fatal("open stores failed", zap.Error(err))
	}
	if cfg.SeedItems {
		if err := configs.SeedItems(ctx, stores.Seeder, logger); err != nil {
			logger.Fatal("seed items failed", zap.Error(err))
		}
	}

	// Services
	locks := services.NewKeyedMutex()
	userSvc := services.NewUserService(stores.Users, services.NewBcryptHasher(), cfg.JWTSecret, cfg.JWTTTL, logger)
	hub := ws.NewOrderHub(userSvc, logger)
	go hub.Run(ctx)

	svc := routes.Services{
		Users:  userSvc,
		Items:  services.NewItemService(stores.Items),
		Carts:  services.NewCartService(stores.Users, stores.Items, stores.Carts, locks, logger),
		Orders: services.NewOrderService(stores.Users, stores.Carts, stores.Orders, locks, hub, logger),
	}

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(cfg, svc, hub, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
