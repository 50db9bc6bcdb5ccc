package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// ===== BASIC CRUD OPERATIONS =====

func (q *QuestionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, question *models.QuizQuestion) error {
	db := getDB(q.db, tx)
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (q *QuestionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizQuestion, error) {
	db := getDB(q.db, tx)
	var question models.QuizQuestion
	if err := db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return &question, nil
}

// ===== LISTING =====

func (q *QuestionPostgreSQL) ListByType(ctx context.Context, tx *gorm.DB, questionType models.QuestionType) ([]*models.QuizQuestion, error) {
	db := getDB(q.db, tx)
	var questions []*models.QuizQuestion
	if err := db.WithContext(ctx).
		Where("question_type = ?", questionType).
		Order("RANDOM()").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s questions: %w", questionType, err)
	}
	return questions, nil
}
