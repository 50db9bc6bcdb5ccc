package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type AchievementPostgreSQL struct {
	db *gorm.DB
}

func NewAchievementPostgreSQL(db *gorm.DB) repositories.AchievementRepository {
	return &AchievementPostgreSQL{db: db}
}

func (a *AchievementPostgreSQL) Create(ctx context.Context, tx *gorm.DB, achievement *models.StudentAchievement) error {
	db := getDB(a.db, tx)
	if err := db.WithContext(ctx).Omit("Student").Create(achievement).Error; err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}
	return nil
}

func (a *AchievementPostgreSQL) GetByIDAndStudent(ctx context.Context, tx *gorm.DB, id, studentID uint) (*models.StudentAchievement, error) {
	db := getDB(a.db, tx)
	var achievement models.StudentAchievement
	if err := db.WithContext(ctx).
		Where("id = ? AND student_id = ?", id, studentID).
		First(&achievement).Error; err != nil {
		return nil, fmt.Errorf("failed to get achievement %d: %w", id, err)
	}
	return &achievement, nil
}

func (a *AchievementPostgreSQL) GetLatestByStudent(ctx context.Context, tx *gorm.DB, studentID uint) (*models.StudentAchievement, error) {
	db := getDB(a.db, tx)
	var achievement models.StudentAchievement
	if err := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("completion_date DESC").
		Order("id DESC").
		Take(&achievement).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest achievement for student %d: %w", studentID, err)
	}
	return &achievement, nil
}

func (a *AchievementPostgreSQL) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.StudentAchievement, error) {
	db := getDB(a.db, tx)
	var achievements []*models.StudentAchievement
	if err := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("completion_date DESC").
		Order("id DESC").
		Find(&achievements).Error; err != nil {
		return nil, fmt.Errorf("failed to list achievements for student %d: %w", studentID, err)
	}
	return achievements, nil
}
