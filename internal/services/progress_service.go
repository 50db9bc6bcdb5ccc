package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/session"
)

type progressService struct {
	repo   repositories.Repository
	store  *session.ProgressStore
	logger *slog.Logger
	now    func() time.Time
}

func NewProgressService(repo repositories.Repository, store *session.ProgressStore, logger *slog.Logger) ProgressService {
	return &progressService{
		repo:   repo,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// GetProgress returns the student's current run, starting one when none is stored
func (s *progressService) GetProgress(ctx context.Context, studentID uint) (*models.LessonProgress, error) {
	if err := s.ensureReady(ctx, studentID); err != nil {
		return nil, err
	}

	progress, err := s.store.Load(ctx, studentID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, session.ErrStateNotFound) {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	now := s.now().UTC()
	progress = &models.LessonProgress{
		StudentID: studentID,
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, progress); err != nil {
		return nil, err
	}

	s.logger.Info("Lesson started", "student_id", studentID)
	return progress, nil
}

func (s *progressService) MarkStep(ctx context.Context, studentID uint, step models.LessonStep) (*models.LessonProgress, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: invalid lesson step %q", ErrValidationFailed, step)
	}
	if err := s.ensureReady(ctx, studentID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	progress, err := s.store.LoadOrStart(ctx, studentID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	progress.Mark(step, now)
	if err := s.store.Save(ctx, progress); err != nil {
		return nil, err
	}

	s.logger.Info("Lesson step completed", "student_id", studentID, "step", step)
	return progress, nil
}

func (s *progressService) ResetProgress(ctx context.Context, studentID uint) error {
	if err := s.ensureReady(ctx, studentID); err != nil {
		return err
	}
	if err := s.store.Reset(ctx, studentID); err != nil {
		return err
	}

	s.logger.Info("Lesson progress reset", "student_id", studentID)
	return nil
}

func (s *progressService) ensureReady(ctx context.Context, studentID uint) error {
	if s.store == nil || !s.store.Available() {
		return ErrProgressUnavailable
	}

	exists, err := s.repo.Student().ExistsByID(ctx, nil, studentID)
	if err != nil {
		return fmt.Errorf("failed to check student: %w", err)
	}
	if !exists {
		return NewNotFoundError("student", studentID)
	}
	return nil
}
