package seed

import (
	"context"
	"io"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.MigrateTables(db))
	return db
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type rowCounts struct {
	users, customers, revenue, invoices int64
}

func countRows(t *testing.T, db *gorm.DB) rowCounts {
	t.Helper()
	var c rowCounts
	require.NoError(t, db.Model(&models.User{}).Count(&c.users).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&c.customers).Error)
	require.NoError(t, db.Model(&models.Revenue{}).Count(&c.revenue).Error)
	require.NoError(t, db.Model(&models.Invoice{}).Count(&c.invoices).Error)
	return c
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seeder := New(db, quietLog())
	ctx := context.Background()

	first, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(userFixtures), first.Users)
	assert.Equal(t, len(customerFixtures), first.Customers)
	assert.Equal(t, len(revenueFixtures), first.Revenue)
	assert.Equal(t, len(invoiceFixtures), first.Invoices)

	before := countRows(t, db)

	second, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Users)
	assert.Zero(t, second.Customers)
	assert.Zero(t, second.Revenue)
	assert.Zero(t, second.Invoices)

	assert.Equal(t, before, countRows(t, db))
}

func TestSeedHashesPasswords(t *testing.T) {
	db := newTestDB(t)
	_, err := New(db, quietLog()).Run(context.Background())
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", userFixtures[0].Email).Error)

	assert.NotEqual(t, userFixtures[0].Password, user.Password)
	assert.NoError(t, utils.ComparePassword(user.Password, userFixtures[0].Password))
}

func TestInvoiceStageSkipsWhenNonEmpty(t *testing.T) {
	db := newTestDB(t)

	// a pre-existing invoice short-circuits the invoice stage entirely
	customer := models.Customer{Name: "Existing", Email: "existing@corp.test"}
	require.NoError(t, db.Create(&customer).Error)
	invoice := models.Invoice{CustomerID: customer.ID, Amount: 100, Status: models.InvoiceStatusPending, Date: time.Now()}
	require.NoError(t, db.Create(&invoice).Error)

	result, err := New(db, quietLog()).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Invoices)

	var n int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	// the other stages still ran
	assert.Equal(t, len(customerFixtures), result.Customers)
	assert.Equal(t, len(revenueFixtures), result.Revenue)
}
