package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"gorm.io/gorm"
)

// StudentRepository interface for student operations
type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *models.Student) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error)
	// GetByIDForShare reads the student under a shared row lock so the row cannot be
	// deleted before the surrounding transaction commits.
	GetByIDForShare(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error)
	List(ctx context.Context, tx *gorm.DB, filters StudentFilters) ([]*models.Student, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

// MaterialRepository interface for lesson material operations
type MaterialRepository interface {
	Create(ctx context.Context, tx *gorm.DB, section *models.MaterialSection) error
	List(ctx context.Context, tx *gorm.DB) ([]*models.MaterialSection, error)
}
