package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/monitoring"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/session"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

type achievementService struct {
	repo      repositories.Repository
	scores    ScoreService
	progress  *session.ProgressStore
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
	now       func() time.Time
}

func NewAchievementService(
	repo repositories.Repository,
	scores ScoreService,
	progress *session.ProgressStore,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) AchievementService {
	return &achievementService{
		repo:      repo,
		scores:    scores,
		progress:  progress,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		now:       time.Now,
	}
}

// RecordAchievement stores one completion snapshot. The performance level is taken as
// supplied; the scores must agree with their counts.
func (s *achievementService) RecordAchievement(ctx context.Context, req *models.RecordAchievementRequest) (*models.StudentAchievement, error) {
	if errs := s.validator.GetBusinessValidator().ValidateAchievementRecord(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	achievement := &models.StudentAchievement{
		StudentID:                req.StudentID,
		QuizScore:                req.QuizScore,
		AssessmentScore:          req.AssessmentScore,
		TotalQuizQuestions:       req.TotalQuizQuestions,
		CorrectQuizAnswers:       req.CorrectQuizAnswers,
		TotalAssessmentQuestions: req.TotalAssessmentQuestions,
		CorrectAssessmentAnswers: req.CorrectAssessmentAnswers,
		TimeSpentMinutes:         req.TimeSpentMinutes,
		PerformanceLevel:         req.PerformanceLevel,
	}

	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if _, err := tx.Student().GetByIDForShare(ctx, nil, req.StudentID); err != nil {
			if repositories.IsNotFoundError(err) {
				return NewNotFoundError("student", req.StudentID)
			}
			return err
		}

		achievement.CompletionDate = s.now().UTC()
		return tx.Achievement().Create(ctx, nil, achievement)
	})
	if err != nil {
		return nil, err
	}

	monitoring.AchievementsRecorded.WithLabelValues(string(achievement.PerformanceLevel)).Inc()
	s.logger.Info("Achievement recorded",
		"achievement_id", achievement.ID,
		"student_id", achievement.StudentID,
		"performance_level", achievement.PerformanceLevel)

	publishEvent(ctx, s.publisher, s.logger, events.NewAchievementRecordedEvent(achievement))
	return achievement, nil
}

func (s *achievementService) ListStudentAchievements(ctx context.Context, studentID uint) ([]*models.StudentAchievement, error) {
	achievements, err := s.repo.Achievement().ListByStudent(ctx, nil, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

// CompleteLesson scores both attempt types, records the snapshot and closes the
// student's lesson run. The overall level comes from the combined counts.
func (s *achievementService) CompleteLesson(ctx context.Context, studentID uint, req *models.CompleteLessonRequest) (*models.StudentAchievement, error) {
	if req == nil {
		req = &models.CompleteLessonRequest{}
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, newValidationError(err)
	}

	quiz, err := s.scores.ComputeScore(ctx, studentID, models.AttemptQuiz)
	if err != nil {
		return nil, err
	}
	assessment, err := s.scores.ComputeScore(ctx, studentID, models.AttemptAssessment)
	if err != nil {
		return nil, err
	}
	overall := quiz.Combine(*assessment)

	now := s.now().UTC()
	progress := s.loadProgress(ctx, studentID)

	timeSpent := req.TimeSpentMinutes
	if timeSpent == nil && progress != nil {
		minutes := progress.ElapsedMinutes(now)
		timeSpent = &minutes
	}

	achievement, err := s.RecordAchievement(ctx, &models.RecordAchievementRequest{
		StudentID:                studentID,
		QuizScore:                quiz.ScorePercentage,
		AssessmentScore:          assessment.ScorePercentage,
		TotalQuizQuestions:       quiz.TotalQuestions,
		CorrectQuizAnswers:       quiz.CorrectAnswers,
		TotalAssessmentQuestions: assessment.TotalQuestions,
		CorrectAssessmentAnswers: assessment.CorrectAnswers,
		TimeSpentMinutes:         timeSpent,
		PerformanceLevel:         overall.PerformanceLevel,
	})
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress.Mark(models.StepAssessment, now)
		completedAt := now
		progress.CompletedAt = &completedAt
		if err := s.progress.Save(ctx, progress); err != nil {
			s.logger.Warn("Failed to close lesson progress", "student_id", studentID, "error", err)
		}
	}

	return achievement, nil
}

// loadProgress returns nil when no run is stored or the store is not configured
func (s *achievementService) loadProgress(ctx context.Context, studentID uint) *models.LessonProgress {
	if s.progress == nil || !s.progress.Available() {
		return nil
	}
	progress, err := s.progress.Load(ctx, studentID)
	if err != nil {
		if !errors.Is(err, session.ErrStateNotFound) {
			s.logger.Warn("Failed to load lesson progress", "student_id", studentID, "error", err)
		}
		return nil
	}
	return progress
}
