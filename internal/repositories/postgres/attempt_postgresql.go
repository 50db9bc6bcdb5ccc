package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

// AttemptPostgreSQL is append-only: it exposes no update or delete.
type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error {
	db := getDB(a.db, tx)
	if err := db.WithContext(ctx).Omit("Student", "Question").Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

func (a *AttemptPostgreSQL) GetByStudent(ctx context.Context, tx *gorm.DB, studentID uint, filters repositories.AttemptFilters) ([]*models.QuizAttempt, error) {
	db := getDB(a.db, tx)
	query := db.WithContext(ctx).
		Model(&models.QuizAttempt{}).
		Where("student_id = ?", studentID)
	query = applyAttemptFilters(query, filters)

	var attempts []*models.QuizAttempt
	if err := query.Order("created_at ASC").Order("id ASC").Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to get attempts for student %d: %w", studentID, err)
	}
	return attempts, nil
}

func (a *AttemptPostgreSQL) CountByStudentAndType(ctx context.Context, tx *gorm.DB, studentID uint, attemptType models.AttemptType) (*repositories.AttemptCounts, error) {
	db := getDB(a.db, tx)
	var counts repositories.AttemptCounts
	if err := db.WithContext(ctx).
		Model(&models.QuizAttempt{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_correct) AS correct").
		Where("student_id = ? AND attempt_type = ?", studentID, attemptType).
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count attempts for student %d: %w", studentID, err)
	}
	return &counts, nil
}
