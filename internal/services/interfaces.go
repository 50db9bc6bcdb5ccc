package services

import (
	"context"

	"github.com/SAP-F-2025/learning-service/internal/models"
)

// ===== SERVICE INTERFACES =====

type StudentService interface {
	CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	// GetStudentByID returns nil without error when the student does not exist
	GetStudentByID(ctx context.Context, id uint) (*models.Student, error)
}

type MaterialService interface {
	CreateMaterialSection(ctx context.Context, req *models.CreateMaterialSectionRequest) (*models.MaterialSection, error)
	ListMaterialSections(ctx context.Context) ([]*models.MaterialSection, error)
}

type QuestionService interface {
	CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.QuizQuestion, error)
	// ListQuestions returns the student view of every question of a type, in random order
	ListQuestions(ctx context.Context, questionType models.QuestionType) ([]models.StudentQuestion, error)
}

type AttemptService interface {
	SubmitAnswer(ctx context.Context, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error)
	GetStudentAttempts(ctx context.Context, studentID uint, attemptType *models.AttemptType) ([]*models.QuizAttempt, error)
}

type ScoreService interface {
	ComputeScore(ctx context.Context, studentID uint, attemptType models.AttemptType) (*models.ScoreSummary, error)
}

type AchievementService interface {
	RecordAchievement(ctx context.Context, req *models.RecordAchievementRequest) (*models.StudentAchievement, error)
	ListStudentAchievements(ctx context.Context, studentID uint) ([]*models.StudentAchievement, error)
	CompleteLesson(ctx context.Context, studentID uint, req *models.CompleteLessonRequest) (*models.StudentAchievement, error)
}

type ReportService interface {
	// GetReport returns nil without error when the student or the achievement is missing
	GetReport(ctx context.Context, studentID uint, achievementID *uint) (*models.AchievementReport, error)
	ExportReport(ctx context.Context, studentID uint, achievementID *uint) (*ReportExport, error)
}

type ProgressService interface {
	GetProgress(ctx context.Context, studentID uint) (*models.LessonProgress, error)
	MarkStep(ctx context.Context, studentID uint, step models.LessonStep) (*models.LessonProgress, error)
	ResetProgress(ctx context.Context, studentID uint) error
}

// ServiceManager owns service construction and lifecycle
type ServiceManager interface {
	Student() StudentService
	Material() MaterialService
	Question() QuestionService
	Attempt() AttemptService
	Score() ScoreService
	Achievement() AchievementService
	Report() ReportService
	Progress() ProgressService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
