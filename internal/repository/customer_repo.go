package repository

import (
	"context"
	"strings"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletePolicy decides what happens to a customer's invoices when the
// customer is deleted.
type DeletePolicy string

const (
	DeleteRestrict DeletePolicy = "restrict"
	DeleteCascade  DeletePolicy = "cascade"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerName is the id+name pair used for selection lists.
type CustomerName struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FindAllNames returns id+name for every customer, name ascending.
func (r *CustomerRepository) FindAllNames(ctx context.Context) ([]CustomerName, error) {
	var rows []CustomerName
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, dataErr("fetch customers", err)
	}
	return rows, nil
}

// FindFiltered returns customers whose name or email contains query
// (case-insensitive), name ascending. An empty query matches everyone.
func (r *CustomerRepository) FindFiltered(ctx context.Context, query string) ([]models.Customer, error) {
	db := r.db.WithContext(ctx).Model(&models.Customer{})

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := db.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, dataErr("fetch filtered customers", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, dataErr("count customers", err)
	}
	return count, nil
}

// Delete removes a customer under the given policy: restrict fails
// with ErrHasInvoices while invoices reference the customer, cascade
// deletes the invoices first. Both run in one transaction so a
// customer is never orphaned from its invoices.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID, policy DeletePolicy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Invoice{}).Where("customer_id = ?", id).Count(&n).Error; err != nil {
			return dataErr("delete customer", err)
		}

		if n > 0 {
			if policy != DeleteCascade {
				return ErrHasInvoices
			}
			if err := tx.Where("customer_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
				return dataErr("delete customer invoices", err)
			}
		}

		result := tx.Where("id = ?", id).Delete(&models.Customer{})
		if result.Error != nil {
			return dataErr("delete customer", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
