package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// FindAll returns every revenue row, unordered.
func (r *RevenueRepository) FindAll(ctx context.Context) ([]models.Revenue, error) {
	var rows []models.Revenue
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, dataErr("fetch revenue", err)
	}
	return rows, nil
}
