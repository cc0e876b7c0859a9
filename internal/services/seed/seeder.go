// Package seed populates the database with the demo dataset. Users,
// customers, and revenue upsert by their unique key; invoices are
// inserted only into an empty table.
package seed

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	db  *gorm.DB
	log *logrus.Logger
}

func New(db *gorm.DB, log *logrus.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Result reports how many rows each stage inserted.
type Result struct {
	Users     int `json:"users"`
	Customers int `json:"customers"`
	Revenue   int `json:"revenue"`
	Invoices  int `json:"invoices"`
}

// Run seeds users, customers, revenue, and invoices in that order,
// aborting on the first failure. The whole sequence runs in one
// transaction, so a failed run leaves nothing behind.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	var res Result

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if res.Users, err = seedUsers(tx); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if res.Customers, err = seedCustomers(tx); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if res.Revenue, err = seedRevenue(tx); err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
		if res.Invoices, err = s.seedInvoices(tx); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"users":     res.Users,
		"customers": res.Customers,
		"revenue":   res.Revenue,
		"invoices":  res.Invoices,
	}).Info("database seeded")

	return &res, nil
}

func seedUsers(tx *gorm.DB) (int, error) {
	inserted := 0
	for _, f := range userFixtures {
		hashed, err := utils.HashPassword(f.Password)
		if err != nil {
			return inserted, err
		}

		user := models.User{ID: f.ID, Name: f.Name, Email: f.Email, Password: string(hashed)}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&user)
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += int(result.RowsAffected)
	}
	return inserted, nil
}

func seedCustomers(tx *gorm.DB) (int, error) {
	inserted := 0
	for _, f := range customerFixtures {
		customer := models.Customer{ID: f.ID, Name: f.Name, Email: f.Email, ImageURL: f.ImageURL}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&customer)
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += int(result.RowsAffected)
	}
	return inserted, nil
}

func seedRevenue(tx *gorm.DB) (int, error) {
	inserted := 0
	for _, f := range revenueFixtures {
		row := models.Revenue{Month: f.Month, Revenue: f.Revenue}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoNothing: true,
		}).Create(&row)
		if result.Error != nil {
			return inserted, result.Error
		}
		inserted += int(result.RowsAffected)
	}
	return inserted, nil
}

// seedInvoices is an explicit short-circuit, not an upsert: if any
// invoice exists the stage skips entirely and reports zero inserted.
func (s *Seeder) seedInvoices(tx *gorm.DB) (int, error) {
	var count int64
	if err := tx.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.WithField("existing", count).Info("invoices present, skipping invoice seed")
		return 0, nil
	}

	invoices := make([]models.Invoice, 0, len(invoiceFixtures))
	for _, f := range invoiceFixtures {
		invoices = append(invoices, models.Invoice{
			CustomerID: f.CustomerID,
			Amount:     f.Amount,
			Status:     f.Status,
			Date:       f.Date,
		})
	}
	if err := tx.Create(&invoices).Error; err != nil {
		return 0, err
	}
	return len(invoices), nil
}
