package repositories

import (
	"context"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"gorm.io/gorm"
)

// QuestionRepository interface for quiz question operations
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *models.QuizQuestion) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizQuestion, error)
	// ListByType returns the questions of one type in random order.
	ListByType(ctx context.Context, tx *gorm.DB, questionType models.QuestionType) ([]*models.QuizQuestion, error)
}

// AttemptRepository interface for the append-only attempt store
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error
	// GetByStudent returns the student's attempts ordered by created_at then id, ascending.
	GetByStudent(ctx context.Context, tx *gorm.DB, studentID uint, filters AttemptFilters) ([]*models.QuizAttempt, error)
	CountByStudentAndType(ctx context.Context, tx *gorm.DB, studentID uint, attemptType models.AttemptType) (*AttemptCounts, error)
}

// AchievementRepository interface for achievement snapshots
type AchievementRepository interface {
	Create(ctx context.Context, tx *gorm.DB, achievement *models.StudentAchievement) error
	// GetByIDAndStudent matches on both keys; an achievement of another student is not found.
	GetByIDAndStudent(ctx context.Context, tx *gorm.DB, id, studentID uint) (*models.StudentAchievement, error)
	GetLatestByStudent(ctx context.Context, tx *gorm.DB, studentID uint) (*models.StudentAchievement, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.StudentAchievement, error)
}
