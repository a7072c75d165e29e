package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parking-backend/models"
)

// openTestDB gives each test a fresh in-memory database with the full schema.
// A single open connection keeps every statement on the same :memory: store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.AppSetting{},
		&models.Client{},
		&models.Parking{},
		&models.ParkingSpot{},
		&models.Booking{},
		&models.Payment{},
		&models.Expense{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedSpot creates one lot, one spot and one client to hang bookings on.
func seedSpot(t *testing.T, db *gorm.DB) (*models.ParkingSpot, *models.Client) {
	t.Helper()

	parking := models.Parking{Address: "ул. Ленина, 1"}
	if err := db.Create(&parking).Error; err != nil {
		t.Fatalf("create parking: %v", err)
	}
	spot := models.ParkingSpot{Number: "A-1", ParkingID: parking.ID}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("create spot: %v", err)
	}
	client := models.Client{Name: "Иванов И.И.", Phone: "+7 900 000-00-00"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	return &spot, &client
}
