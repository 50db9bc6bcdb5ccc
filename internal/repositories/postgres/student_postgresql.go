package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

// Create inserts a student. A duplicate email surfaces as gorm.ErrDuplicatedKey.
func (s *StudentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	db := getDB(s.db, tx)
	if err := db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (s *StudentPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error) {
	db := getDB(s.db, tx)
	var student models.Student
	if err := db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetByIDForShare(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error) {
	db := getDB(s.db, tx)
	var student models.Student
	if err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		First(&student, id).Error; err != nil {
		return nil, fmt.Errorf("failed to lock student %d: %w", id, err)
	}
	return &student, nil
}

// List returns students, newest first unless filters say otherwise
func (s *StudentPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.StudentFilters) ([]*models.Student, error) {
	db := getDB(s.db, tx)
	query := db.WithContext(ctx).Model(&models.Student{})
	query = applySort(query, filters.SortBy, filters.SortOrder)

	var students []*models.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *StudentPostgreSQL) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	db := getDB(s.db, tx)
	var count int64
	if err := db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}
	return count > 0, nil
}
