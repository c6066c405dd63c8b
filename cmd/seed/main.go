package main

import (
	"context"
	"log"

	"anylist/internal/config"
	"anylist/internal/db"
	"anylist/internal/model"
	"anylist/internal/repository"
	"anylist/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.List{},
		&model.ListItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	listRepo := repository.NewListRepository(gormDB)
	listItemRepo := repository.NewListItemRepository(gormDB)

	itemService := service.NewItemService(itemRepo)
	listService := service.NewListService(listRepo, listItemRepo)
	listItemService := service.NewListItemService(listItemRepo, listRepo, itemRepo)
	seedService := service.NewSeedService(
		cfg.IsProduction(),
		userRepo, itemRepo, listRepo, listItemRepo,
		itemService, listService, listItemService,
	)

	executed, err := seedService.Execute(context.Background())
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seed completed successfully (executed=%v)", executed)
}
