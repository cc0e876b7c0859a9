package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoicesPerPage is the fixed page size for filtered invoice listings.
const InvoicesPerPage = 6

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceWithCustomer is one row of a customer-joined invoice listing.
// Amount stays in cents.
type InvoiceWithCustomer struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

const invoiceListColumns = "invoices.id, invoices.amount, invoices.status, invoices.date, " +
	"customers.name, customers.email, customers.image_url"

// filtered builds the shared search predicate: case-insensitive
// substring match on customer name, customer email, or status, plus
// exact amount equality when the query parses as an integer. A
// non-numeric query silently skips the amount clause.
func (r *InvoiceRepository) filtered(ctx context.Context, query string) *gorm.DB {
	db := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id")

	if query == "" {
		return db
	}

	like := "%" + strings.ToLower(query) + "%"
	where := "LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR LOWER(invoices.status) LIKE ?"
	args := []interface{}{like, like, like}

	if amount, err := strconv.ParseInt(query, 10, 64); err == nil {
		where += " OR invoices.amount = ?"
		args = append(args, amount)
	}

	return db.Where(where, args...)
}

// FindFiltered returns one page (at most InvoicesPerPage rows) of the
// filtered listing, ordered by date descending. Page numbers are
// 1-based.
func (r *InvoiceRepository) FindFiltered(ctx context.Context, query string, page int) ([]InvoiceWithCustomer, error) {
	if page < 1 {
		page = 1
	}

	var rows []InvoiceWithCustomer
	err := r.filtered(ctx, query).
		Select(invoiceListColumns).
		Order("invoices.date DESC").
		Limit(InvoicesPerPage).
		Offset((page - 1) * InvoicesPerPage).
		Scan(&rows).Error
	if err != nil {
		return nil, dataErr("fetch filtered invoices", err)
	}
	return rows, nil
}

// PageCount returns ceil(matching rows / InvoicesPerPage) for the
// same predicate FindFiltered uses.
func (r *InvoiceRepository) PageCount(ctx context.Context, query string) (int, error) {
	var count int64
	if err := r.filtered(ctx, query).Count(&count).Error; err != nil {
		return 0, dataErr("count filtered invoices", err)
	}
	return int((count + InvoicesPerPage - 1) / InvoicesPerPage), nil
}

// FindLatest returns the most recent invoices joined with their
// customer, ordered by date descending.
func (r *InvoiceRepository) FindLatest(ctx context.Context, limit int) ([]InvoiceWithCustomer, error) {
	var rows []InvoiceWithCustomer
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Select(invoiceListColumns).
		Order("invoices.date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, dataErr("fetch latest invoices", err)
	}
	return rows, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, notFoundOr("fetch invoice by id", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return 0, dataErr("count invoices", err)
	}
	return count, nil
}

// SumAmountByStatus returns the total amount in cents across invoices
// with the given status.
func (r *InvoiceRepository) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, dataErr("sum invoice amounts", err)
	}
	return sum, nil
}

// FindByCustomerIDs fetches every invoice belonging to the given
// customers in a single batch; grouping happens in the caller.
func (r *InvoiceRepository) FindByCustomerIDs(ctx context.Context, ids []uuid.UUID) ([]models.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).Where("customer_id IN ?", ids).Find(&invoices).Error; err != nil {
		return nil, dataErr("fetch invoices for customers", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, customerID uuid.UUID, amount int64, status string, date time.Time) (*models.Invoice, error) {
	invoice := models.Invoice{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       date,
	}
	if err := r.db.WithContext(ctx).Create(&invoice).Error; err != nil {
		return nil, dataErr("create invoice", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, id, customerID uuid.UUID, amount int64, status string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, notFoundOr("update invoice", err)
	}

	invoice.CustomerID = customerID
	invoice.Amount = amount
	invoice.Status = status
	if err := r.db.WithContext(ctx).Save(&invoice).Error; err != nil {
		return nil, dataErr("update invoice", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return dataErr("delete invoice", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
