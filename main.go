// File: savora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savora/config"
	"savora/database"
	catalogRepo "savora/database/repository/catalog"
	rulesRepo "savora/database/repository/rules"
	zoneRepo "savora/database/repository/zone"
	"savora/handlers"
	"savora/middleware"
	"savora/routes"
	"savora/services/catalog"
	"savora/services/delivery"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitQuoteCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	zones := zoneRepo.NewMongoZoneRepo()
	rules := rulesRepo.NewMongoRulesRepo()
	catalogStore := catalogRepo.NewMongoCatalogRepo()

	// engines and services.
	quoteEngine := &delivery.DefaultQuoteEngine{}
	browseService := &catalog.DefaultBrowseService{Repo: catalogStore}

	deliveryHandler := handlers.NewDeliveryHandler(quoteEngine, zones, rules, utils.GetCacheClient(), utils.GetQuoteCacheClient(), logger)
	catalogHandler := handlers.NewCatalogHandler(browseService)
	deliveryAdminHandler := handlers.NewDeliveryAdminHandler(zones, rules)
	catalogAdminHandler := handlers.NewCatalogAdminHandler(catalogStore)

	routes.RegisterRoutes(router, deliveryHandler, catalogHandler, deliveryAdminHandler, catalogAdminHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetQuoteCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
