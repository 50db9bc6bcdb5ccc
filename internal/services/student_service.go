package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) StudentService {
	return &studentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// CreateStudent inserts a student. A duplicate email is returned unchanged from the
// repository so callers can match gorm.ErrDuplicatedKey.
func (s *studentService) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, newValidationError(err)
	}

	student := &models.Student{
		Name:  req.Name,
		Email: req.Email,
		Grade: req.Grade,
	}
	if err := s.repo.Student().Create(ctx, nil, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student created", "student_id", student.ID)
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repo.Student().List(ctx, nil, repositories.StudentFilters{
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}
