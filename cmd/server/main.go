package main

import (
	"log"
	"net/http"

	_ "anylist/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"anylist/internal/auth"
	"anylist/internal/cache"
	"anylist/internal/config"
	"anylist/internal/db"
	"anylist/internal/handler"
	"anylist/internal/model"
	"anylist/internal/repository"
	"anylist/internal/router"
	"anylist/internal/service"
)

// @title AnyList API
// @version 1.0
// @description Multi-tenant list management API with JWT authentication and role-based access.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models, parents before children
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.List{},
		&model.ListItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	listRepo := repository.NewListRepository(gormDB)
	listItemRepo := repository.NewListItemRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	itemService := service.NewItemService(itemRepo)
	listService := service.NewListService(listRepo, listItemRepo)
	listItemService := service.NewListItemService(listItemRepo, listRepo, itemRepo)
	seedService := service.NewSeedService(
		cfg.IsProduction(),
		userRepo, itemRepo, listRepo, listItemRepo,
		itemService, listService, listItemService,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	listHandler := handler.NewListHandler(listService, listItemService)
	listItemHandler := handler.NewListItemHandler(listItemService)
	userHandler := handler.NewUserHandler(userService, itemService, listService)
	seedHandler := handler.NewSeedHandler(seedService)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		itemHandler,
		listHandler,
		listItemHandler,
		userHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
