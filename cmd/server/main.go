package main

import (
	"log"
	"net/http"
	"os"

	_ "bistro/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bistro/internal/auth"
	"bistro/internal/cache"
	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/handler"
	"bistro/internal/model"
	"bistro/internal/processor"
	"bistro/internal/repository"
	"bistro/internal/router"
	"bistro/internal/service"
)

// @title Bistro API
// @version 1.0
// @description Restaurant ordering backend with catalog, carts, checkout settlement and analytics.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.PaymentLine{},
			&model.Payment{},
			&model.CartItem{},
			&model.MenuItem{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.CartItem{},
		&model.Payment{},
		&model.PaymentLine{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories hold the one pooled storage handle acquired here; no
	// component owns a connection of its own.
	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	intentClient := processor.NewStripeClient(cfg.StripeSecretKey)

	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo, cacheClient)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(paymentRepo, cartRepo, menuRepo, intentClient)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo, cacheClient)

	authHandler := handler.NewAuthHandler(jwtService)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(checkoutService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		userHandler,
		menuHandler,
		cartHandler,
		paymentHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
