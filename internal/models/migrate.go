package models

import (
	"fmt"

	"gorm.io/gorm"
)

// MigrateTables runs schema migrations for all models.
func MigrateTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Customer{},
		&Invoice{},
		&Revenue{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
