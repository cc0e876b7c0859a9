package repository

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Acme", "billing@acme.test")
	invoice := createInvoice(t, db, customer.ID, 1050, models.InvoiceStatusPaid, day(2023, time.June, 1))

	got, err := repo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	// the repository keeps cents; the dollar conversion happens only in
	// the detail view on top of it
	assert.Equal(t, int64(1050), got.Amount)
	assert.Equal(t, customer.ID, got.CustomerID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindFilteredPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Globex", "ap@globex.test")
	for i := 0; i < 8; i++ {
		createInvoice(t, db, customer.ID, int64(1000+i), models.InvoiceStatusPending, day(2023, time.January, i+1))
	}

	page1, err := repo.FindFiltered(ctx, "globex", 1)
	require.NoError(t, err)
	page2, err := repo.FindFiltered(ctx, "globex", 2)
	require.NoError(t, err)

	assert.Len(t, page1, InvoicesPerPage)
	assert.Len(t, page2, 2)

	seen := map[uuid.UUID]bool{}
	all := append(append([]InvoiceWithCustomer{}, page1...), page2...)
	for _, row := range all {
		assert.False(t, seen[row.ID], "invoice %s appears on more than one page", row.ID)
		seen[row.ID] = true
	}
	assert.Len(t, seen, 8)

	// concatenated pages reconstruct the full listing, newest first
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.After(all[i-1].Date))
	}
}

func TestPageCountCeilingLaw(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Initech", "ar@initech.test")

	pages, err := repo.PageCount(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, pages)

	for i := 1; i <= 13; i++ {
		createInvoice(t, db, customer.ID, int64(i*100), models.InvoiceStatusPaid, day(2023, time.February, i))

		pages, err := repo.PageCount(ctx, "")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pages*InvoicesPerPage, i)
		assert.Greater(t, i, (pages-1)*InvoicesPerPage)
	}
}

func TestFindFilteredPredicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Hooli", "pay@hooli.test")
	createInvoice(t, db, customer.ID, 500, models.InvoiceStatusPaid, day(2023, time.March, 1))
	createInvoice(t, db, customer.ID, 777, models.InvoiceStatusPending, day(2023, time.March, 2))

	// numeric query adds an exact amount clause
	rows, err := repo.FindFiltered(ctx, "500", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(500), rows[0].Amount)

	// non-numeric query silently skips the amount clause
	rows, err = repo.FindFiltered(ctx, "pend", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(777), rows[0].Amount)

	// name match is case-insensitive
	rows, err = repo.FindFiltered(ctx, "HOOLI", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// email match
	rows, err = repo.FindFiltered(ctx, "pay@hooli", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFindLatest(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Umbrella", "inv@umbrella.test")
	for i := 1; i <= 7; i++ {
		createInvoice(t, db, customer.ID, int64(i*100), models.InvoiceStatusPaid, day(2023, time.April, i))
	}

	rows, err := repo.FindLatest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, day(2023, time.April, 7), rows[0].Date)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Date.After(rows[i-1].Date))
	}
	assert.Equal(t, "Umbrella", rows[0].Name)
	assert.Equal(t, "inv@umbrella.test", rows[0].Email)
}

func TestCountAndSums(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	sum, err := repo.SumAmountByStatus(ctx, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Zero(t, sum)

	customer := createCustomer(t, db, "Stark", "tony@stark.test")
	createInvoice(t, db, customer.ID, 1000, models.InvoiceStatusPaid, day(2023, time.May, 1))
	createInvoice(t, db, customer.ID, 2500, models.InvoiceStatusPaid, day(2023, time.May, 2))
	createInvoice(t, db, customer.ID, 500, models.InvoiceStatusPending, day(2023, time.May, 3))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	paid, err := repo.SumAmountByStatus(ctx, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), paid)

	pending, err := repo.SumAmountByStatus(ctx, models.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(500), pending)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Wayne", "bruce@wayne.test")
	invoice := createInvoice(t, db, customer.ID, 900, models.InvoiceStatusPending, day(2023, time.July, 1))

	require.NoError(t, repo.Delete(ctx, invoice.ID))
	assert.ErrorIs(t, repo.Delete(ctx, invoice.ID), ErrNotFound)
}

func TestUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Oscorp", "norman@oscorp.test")
	invoice := createInvoice(t, db, customer.ID, 100, models.InvoiceStatusPending, day(2023, time.August, 1))

	updated, err := repo.Update(ctx, invoice.ID, customer.ID, 2000, models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), updated.Amount)
	assert.Equal(t, models.InvoiceStatusPaid, updated.Status)

	_, err = repo.Update(ctx, uuid.New(), customer.ID, 100, models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}
