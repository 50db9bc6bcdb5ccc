package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type MaterialPostgreSQL struct {
	db *gorm.DB
}

func NewMaterialPostgreSQL(db *gorm.DB) repositories.MaterialRepository {
	return &MaterialPostgreSQL{db: db}
}

func (m *MaterialPostgreSQL) Create(ctx context.Context, tx *gorm.DB, section *models.MaterialSection) error {
	db := getDB(m.db, tx)
	if err := db.WithContext(ctx).Create(section).Error; err != nil {
		return fmt.Errorf("failed to create material section: %w", err)
	}
	return nil
}

// List returns all sections by display order
func (m *MaterialPostgreSQL) List(ctx context.Context, tx *gorm.DB) ([]*models.MaterialSection, error) {
	db := getDB(m.db, tx)
	var sections []*models.MaterialSection
	// "order" is a reserved word and must be quoted
	if err := db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("failed to list material sections: %w", err)
	}
	return sections, nil
}
