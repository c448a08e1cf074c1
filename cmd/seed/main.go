package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/model"
	"bistro/internal/repository"
)

type seedItem struct {
	Name     string
	Recipe   string
	Category string
	Price    string
}

var seedMenu = []seedItem{
	{Name: "Roast Duck Breast", Recipe: "Duck breast, orange glaze, roasted vegetables", Category: "Offered", Price: "14.50"},
	{Name: "Tuna Niçoise", Recipe: "Seared tuna, olives, green beans, egg", Category: "Salad", Price: "11.50"},
	{Name: "Escalope de Veau", Recipe: "Veal escalope, lemon butter, capers", Category: "Offered", Price: "12.50"},
	{Name: "Fish Parmentier", Recipe: "White fish, mashed potato crust", Category: "Offered", Price: "12.50"},
	{Name: "Chicken and Walnut Salad", Recipe: "Grilled chicken, walnuts, mixed leaves", Category: "Salad", Price: "10.00"},
	{Name: "Margherita Pizza", Recipe: "Tomato, mozzarella, basil", Category: "Pizza", Price: "9.50"},
	{Name: "Quattro Formaggi", Recipe: "Four cheese blend, tomato base", Category: "Pizza", Price: "11.00"},
	{Name: "Lentil Soup", Recipe: "Red lentils, cumin, lemon", Category: "Soup", Price: "7.00"},
	{Name: "French Onion Soup", Recipe: "Caramelized onion, gruyère crouton", Category: "Soup", Price: "7.50"},
	{Name: "Chocolate Fondant", Recipe: "Dark chocolate, molten center", Category: "Dessert", Price: "6.50"},
	{Name: "Crème Brûlée", Recipe: "Vanilla custard, caramelized sugar", Category: "Dessert", Price: "5.00"},
	{Name: "Tarte Tatin", Recipe: "Caramelized apple, puff pastry", Category: "Dessert", Price: "6.00"},
	{Name: "Espresso", Recipe: "Double shot", Category: "Drinks", Price: "2.50"},
	{Name: "Fresh Lemonade", Recipe: "Lemon, mint, sparkling water", Category: "Drinks", Price: "3.50"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.MenuItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	menuRepo := repository.NewMenuRepository(gormDB)

	count, err := menuRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count menu items: %v", err)
	}
	if count > 0 {
		log.Printf("Menu already has %d items, nothing to do", count)
		return
	}

	seeded := 0
	for _, s := range seedMenu {
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			log.Printf("Skipping %q: bad price %q", s.Name, s.Price)
			continue
		}
		item := &model.MenuItem{
			Name:     s.Name,
			Recipe:   s.Recipe,
			Category: s.Category,
			Price:    price,
		}
		if err := menuRepo.Create(ctx, item); err != nil {
			log.Printf("Failed to seed %q: %v", s.Name, err)
			continue
		}
		seeded++
	}

	log.Printf("Seeded %d menu items", seeded)
}
