package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/monitoring"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// GetReport assembles the student, one achievement and the attempts behind it. The
// achievement is the given one (which must belong to the student) or else the latest.
// Detail counts come from the achievement; attempt lists are attached as they are now.
func (s *reportService) GetReport(ctx context.Context, studentID uint, achievementID *uint) (*models.AchievementReport, error) {
	report, err := s.assemble(ctx, studentID, achievementID)
	if err != nil || report == nil {
		return report, err
	}

	monitoring.ReportsAssembled.WithLabelValues("json").Inc()
	return report, nil
}

func (s *reportService) assemble(ctx context.Context, studentID uint, achievementID *uint) (*models.AchievementReport, error) {
	student, err := s.repo.Student().GetByID(ctx, nil, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	var achievement *models.StudentAchievement
	if achievementID != nil {
		achievement, err = s.repo.Achievement().GetByIDAndStudent(ctx, nil, *achievementID, studentID)
	} else {
		achievement, err = s.repo.Achievement().GetLatestByStudent(ctx, nil, studentID)
	}
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	quizAttempts, err := s.attemptsOfType(ctx, studentID, models.AttemptQuiz)
	if err != nil {
		return nil, err
	}
	assessmentAttempts, err := s.attemptsOfType(ctx, studentID, models.AttemptAssessment)
	if err != nil {
		return nil, err
	}

	return &models.AchievementReport{
		Student:     *student,
		Achievement: *achievement,
		QuizDetails: models.AttemptDetails{
			TotalQuestions:     achievement.TotalQuizQuestions,
			CorrectAnswers:     achievement.CorrectQuizAnswers,
			ScorePercentage:    achievement.QuizScore,
			QuestionsAttempted: quizAttempts,
		},
		AssessmentDetails: models.AttemptDetails{
			TotalQuestions:     achievement.TotalAssessmentQuestions,
			CorrectAnswers:     achievement.CorrectAssessmentAnswers,
			ScorePercentage:    achievement.AssessmentScore,
			QuestionsAttempted: assessmentAttempts,
		},
	}, nil
}

func (s *reportService) attemptsOfType(ctx context.Context, studentID uint, attemptType models.AttemptType) ([]models.QuizAttempt, error) {
	attempts, err := s.repo.Attempt().GetByStudent(ctx, nil, studentID, repositories.AttemptFilters{AttemptType: &attemptType})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s attempts: %w", attemptType, err)
	}

	out := make([]models.QuizAttempt, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, *a)
	}
	return out, nil
}
