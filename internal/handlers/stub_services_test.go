package handlers

import (
	"context"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/services"
)

// stubServices implements every service interface with overridable funcs. Unset funcs
// panic so a test fails loudly when a route reaches an unexpected service.
type stubServices struct {
	createStudent  func(*models.CreateStudentRequest) (*models.Student, error)
	listStudents   func() ([]*models.Student, error)
	getStudent     func(uint) (*models.Student, error)
	listQuestions  func(models.QuestionType) ([]models.StudentQuestion, error)
	submitAnswer   func(*models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error)
	getAttempts    func(uint, *models.AttemptType) ([]*models.QuizAttempt, error)
	computeScore   func(uint, models.AttemptType) (*models.ScoreSummary, error)
	record         func(*models.RecordAchievementRequest) (*models.StudentAchievement, error)
	completeLesson func(uint, *models.CompleteLessonRequest) (*models.StudentAchievement, error)
	getReport      func(uint, *uint) (*models.AchievementReport, error)
	exportReport   func(uint, *uint) (*services.ReportExport, error)
	markStep       func(uint, models.LessonStep) (*models.LessonProgress, error)
	healthErr      error
}

func (s *stubServices) Student() services.StudentService         { return s }
func (s *stubServices) Material() services.MaterialService       { return s }
func (s *stubServices) Question() services.QuestionService       { return s }
func (s *stubServices) Attempt() services.AttemptService         { return s }
func (s *stubServices) Score() services.ScoreService             { return s }
func (s *stubServices) Achievement() services.AchievementService { return s }
func (s *stubServices) Report() services.ReportService           { return s }
func (s *stubServices) Progress() services.ProgressService       { return s }

func (s *stubServices) Initialize(ctx context.Context) error  { return nil }
func (s *stubServices) HealthCheck(ctx context.Context) error { return s.healthErr }
func (s *stubServices) Shutdown(ctx context.Context) error    { return nil }

func (s *stubServices) CreateStudent(ctx context.Context, req *models.CreateStudentRequest) (*models.Student, error) {
	return s.createStudent(req)
}

func (s *stubServices) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.listStudents()
}

func (s *stubServices) GetStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	return s.getStudent(id)
}

func (s *stubServices) CreateMaterialSection(ctx context.Context, req *models.CreateMaterialSectionRequest) (*models.MaterialSection, error) {
	return &models.MaterialSection{ID: 1, Title: req.Title, Order: req.Order}, nil
}

func (s *stubServices) ListMaterialSections(ctx context.Context) ([]*models.MaterialSection, error) {
	return []*models.MaterialSection{}, nil
}

func (s *stubServices) CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.QuizQuestion, error) {
	return &models.QuizQuestion{ID: 1, QuestionText: req.QuestionText}, nil
}

func (s *stubServices) ListQuestions(ctx context.Context, questionType models.QuestionType) ([]models.StudentQuestion, error) {
	return s.listQuestions(questionType)
}

func (s *stubServices) SubmitAnswer(ctx context.Context, req *models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	return s.submitAnswer(req)
}

func (s *stubServices) GetStudentAttempts(ctx context.Context, studentID uint, attemptType *models.AttemptType) ([]*models.QuizAttempt, error) {
	return s.getAttempts(studentID, attemptType)
}

func (s *stubServices) ComputeScore(ctx context.Context, studentID uint, attemptType models.AttemptType) (*models.ScoreSummary, error) {
	return s.computeScore(studentID, attemptType)
}

func (s *stubServices) RecordAchievement(ctx context.Context, req *models.RecordAchievementRequest) (*models.StudentAchievement, error) {
	return s.record(req)
}

func (s *stubServices) ListStudentAchievements(ctx context.Context, studentID uint) ([]*models.StudentAchievement, error) {
	return []*models.StudentAchievement{}, nil
}

func (s *stubServices) CompleteLesson(ctx context.Context, studentID uint, req *models.CompleteLessonRequest) (*models.StudentAchievement, error) {
	return s.completeLesson(studentID, req)
}

func (s *stubServices) GetReport(ctx context.Context, studentID uint, achievementID *uint) (*models.AchievementReport, error) {
	return s.getReport(studentID, achievementID)
}

func (s *stubServices) ExportReport(ctx context.Context, studentID uint, achievementID *uint) (*services.ReportExport, error) {
	return s.exportReport(studentID, achievementID)
}

func (s *stubServices) GetProgress(ctx context.Context, studentID uint) (*models.LessonProgress, error) {
	return nil, services.ErrProgressUnavailable
}

func (s *stubServices) MarkStep(ctx context.Context, studentID uint, step models.LessonStep) (*models.LessonProgress, error) {
	return s.markStep(studentID, step)
}

func (s *stubServices) ResetProgress(ctx context.Context, studentID uint) error {
	return nil
}
