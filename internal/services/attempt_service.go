package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/monitoring"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

type attemptService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAttemptService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AttemptService {
	return &attemptService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// SubmitAnswer records one answer. The student row is share-locked and the question
// read inside the same transaction, so no attempt is written for a missing parent.
// The response carries the answer key and explanation for feedback.
func (s *attemptService) SubmitAnswer(ctx context.Context, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, newValidationError(err)
	}

	var (
		attempt  *models.QuizAttempt
		question *models.QuizQuestion
	)
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if _, err := tx.Student().GetByIDForShare(ctx, nil, req.StudentID); err != nil {
			if repositories.IsNotFoundError(err) {
				return NewNotFoundError("student", req.StudentID)
			}
			return err
		}

		var err error
		question, err = tx.Question().GetByID(ctx, nil, req.QuestionID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return NewNotFoundError("question", req.QuestionID)
			}
			return err
		}

		attempt = &models.QuizAttempt{
			StudentID:      req.StudentID,
			QuestionID:     req.QuestionID,
			SelectedAnswer: req.SelectedAnswer,
			IsCorrect:      question.IsCorrect(req.SelectedAnswer),
			AttemptType:    req.AttemptType,
		}
		return tx.Attempt().Create(ctx, nil, attempt)
	})
	if err != nil {
		return nil, err
	}

	monitoring.AttemptsSubmitted.WithLabelValues(string(attempt.AttemptType), strconv.FormatBool(attempt.IsCorrect)).Inc()
	s.logger.Info("Answer submitted",
		"attempt_id", attempt.ID,
		"student_id", attempt.StudentID,
		"question_id", attempt.QuestionID,
		"attempt_type", attempt.AttemptType,
		"is_correct", attempt.IsCorrect)

	publishEvent(ctx, s.publisher, s.logger, events.NewAttemptSubmittedEvent(attempt))
	return models.NewSubmitAnswerResponse(attempt, question), nil
}

func (s *attemptService) GetStudentAttempts(ctx context.Context, studentID uint, attemptType *models.AttemptType) ([]*models.QuizAttempt, error) {
	if attemptType != nil && !attemptType.Valid() {
		return nil, fmt.Errorf("%w: invalid attempt type %q", ErrValidationFailed, *attemptType)
	}

	attempts, err := s.repo.Attempt().GetByStudent(ctx, nil, studentID, repositories.AttemptFilters{AttemptType: attemptType})
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	return attempts, nil
}
