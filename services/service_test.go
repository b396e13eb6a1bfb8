package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JosephChoi/abcbond-api/models"
)

// newTestDB returns an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Investment{},
		&models.MonthlyInterest{},
		&models.UserInvestment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := NewUserService(db).Create(CreateUserInput{
		Username: username,
		Password: "secret123",
		Name:     "Test " + username,
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedInvestment(t *testing.T, db *gorm.DB, name string, rate float64, status string) *InvestmentView {
	t.Helper()
	inv, err := NewInvestmentService(db).Create(CreateInvestmentInput{
		Name:           name,
		Location:       "Seoul",
		Address:        "123 Gangnam-daero",
		TotalAmount:    1000000,
		ExpectedReturn: rate,
		StartDate:      "2024-01-01",
		EndDate:        "2025-01-01",
		Status:         status,
	})
	if err != nil {
		t.Fatalf("seed investment %s: %v", name, err)
	}
	return inv
}
