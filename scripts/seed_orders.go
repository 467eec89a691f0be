package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/drodriguezm/pizzeria-api/internal/config"
	"github.com/drodriguezm/pizzeria-api/internal/database"
	"github.com/drodriguezm/pizzeria-api/internal/models"
	"github.com/joho/godotenv"
)

// Seeds a handful of sample orders for local frontend development.
// Run with: go run scripts/seed_orders.go [-force]
func main() {
	force := flag.Bool("force", false, "Seed even if orders already exist")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.PizzaLine{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count > 0 && !*force {
		log.Printf("Database already has %d orders, skipping seed (use -force to override)", count)
		return
	}

	orders := []models.Order{
		{
			CustomerName: "Ana Torres",
			Address:      "Calle 1 #23",
			Phone:        "555-0101",
			PurchaseDate: "2024-01-01 12:00:00",
			Pizzas: []models.PizzaLine{
				{Size: "M", Ingredients: "queso", Count: 1, Subtotal: 10.0},
				{Size: "G", Ingredients: "peperoni,queso", Count: 2, Subtotal: 28.0},
			},
		},
		{
			CustomerName: "Luis Mora",
			Address:      "Av. Central 45",
			Phone:        "555-0102",
			PurchaseDate: "2024-01-02 19:30:00",
			Pizzas: []models.PizzaLine{
				{Size: "CH", Ingredients: "champiñones,jamón", Count: 1, Subtotal: 8.5},
			},
		},
	}

	for _, order := range orders {
		if err := db.Create(&order).Error; err != nil {
			log.Fatal("Failed to seed order:", err)
		}
		fmt.Printf("Seeded order %d for %s with %d pizzas\n", order.ID, order.CustomerName, len(order.Pizzas))
	}

	log.Println("Seeding complete")
}
