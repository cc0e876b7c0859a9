package repository

import (
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.MigrateTables(db))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func createCustomer(t *testing.T, db *gorm.DB, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Email: email, ImageURL: "/customers/" + name + ".png"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, amount int64, status string, date time.Time) models.Invoice {
	t.Helper()
	invoice := models.Invoice{CustomerID: customerID, Amount: amount, Status: status, Date: date}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}
