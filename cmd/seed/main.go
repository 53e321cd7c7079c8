// Command seed inserts a small set of fixture transactions for one
// customer/business pair, then exits. Administrative/test fixture only.
package main

import (
	"log"
	"strconv"
	"time"

	"github.com/khanut-app/backend/internal/infrastructure/adapter/database"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/model"
	"github.com/khanut-app/backend/internal/infrastructure/config"
)

const (
	seedCustomerID = "64f1b2a9c3d4e5f601234567"
	seedBusinessID = "64f1b2a9c3d4e5f689abcdef"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := database.NewConnection(&database.Config{
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := conn.Migrate(); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	transactions := []model.Transaction{
		{
			CustomerID:  seedCustomerID,
			BusinessID:  seedBusinessID,
			Amount:      250,
			Method:      "telebirr",
			Status:      "completed",
			Description: "Grocery order",
			TxRef:       "TX-SEED-0001",
			CreatedAt:   time.Date(2024, 12, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			CustomerID:  seedCustomerID,
			BusinessID:  seedBusinessID,
			Amount:      120.5,
			Method:      "cbebirr",
			Status:      "completed",
			Description: "Coffee subscription",
			TxRef:       "TX-SEED-0002",
			CreatedAt:   time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			CustomerID:  seedCustomerID,
			BusinessID:  seedBusinessID,
			Amount:      780,
			Method:      "chapa-web",
			Status:      "pending",
			Description: "Electronics purchase",
			TxRef:       "TX-SEED-0003",
			CreatedAt:   time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC),
		},
	}

	for i := range transactions {
		if err := conn.DB.Create(&transactions[i]).Error; err != nil {
			log.Fatalf("Failed to insert seed transaction %s: %v", transactions[i].TxRef, err)
		}
	}

	log.Printf("Seeded %d transactions for customer %s", len(transactions), seedCustomerID)
}

func parsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil {
		return 5432
	}
	return p
}
