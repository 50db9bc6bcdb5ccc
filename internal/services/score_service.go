package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type scoreService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewScoreService(repo repositories.Repository, logger *slog.Logger) ScoreService {
	return &scoreService{
		repo:   repo,
		logger: logger,
	}
}

// ComputeScore reduces the student's attempts of one type to a summary. A student
// with no attempts scores zero with needs_improvement.
func (s *scoreService) ComputeScore(ctx context.Context, studentID uint, attemptType models.AttemptType) (*models.ScoreSummary, error) {
	if !attemptType.Valid() {
		return nil, fmt.Errorf("%w: invalid attempt type %q", ErrValidationFailed, attemptType)
	}

	counts, err := s.repo.Attempt().CountByStudentAndType(ctx, nil, studentID, attemptType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s score: %w", attemptType, err)
	}

	summary := models.NewScoreSummary(counts.Correct, counts.Total)
	s.logger.Debug("Score computed",
		"student_id", studentID,
		"attempt_type", attemptType,
		"total", summary.TotalQuestions,
		"correct", summary.CorrectAnswers,
		"percentage", summary.ScorePercentage)
	return &summary, nil
}
