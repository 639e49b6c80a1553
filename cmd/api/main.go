package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/httpserver"
	categoryrepo "ecommerce-backend/internal/repository/category"
	countryrepo "ecommerce-backend/internal/repository/country"
	orderrepo "ecommerce-backend/internal/repository/order"
	productrepo "ecommerce-backend/internal/repository/product"
	staterepo "ecommerce-backend/internal/repository/state"
	catalogsvc "ecommerce-backend/internal/service/catalog"
	checkoutsvc "ecommerce-backend/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	countryRepo := countryrepo.NewPostgres(dbpool)
	stateRepo := staterepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	checkoutService := checkoutsvc.New(orderRepo, productRepo, countryRepo, stateRepo)
	catalogService := catalogsvc.New(productRepo, categoryRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CheckoutSvc: checkoutService,
		CatalogSvc:  catalogService,
		CountryRepo: countryRepo,
		StateRepo:   stateRepo,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
