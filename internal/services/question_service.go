package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

type questionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuestionService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) QuestionService {
	return &questionService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.QuizQuestion, error) {
	if errs := s.validator.GetBusinessValidator().ValidateQuestionCreate(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	question := &models.QuizQuestion{
		QuestionText:    req.QuestionText,
		OptionA:         req.OptionA,
		OptionB:         req.OptionB,
		OptionC:         req.OptionC,
		OptionD:         req.OptionD,
		CorrectAnswer:   req.CorrectAnswer,
		QuestionType:    req.QuestionType,
		DifficultyLevel: req.DifficultyLevel,
		Topic:           req.Topic,
		Explanation:     req.Explanation,
	}
	if err := s.repo.Question().Create(ctx, nil, question); err != nil {
		return nil, err
	}

	s.logger.Info("Question created",
		"question_id", question.ID,
		"type", question.QuestionType,
		"difficulty", question.DifficultyLevel)
	return question, nil
}

func (s *questionService) ListQuestions(ctx context.Context, questionType models.QuestionType) ([]models.StudentQuestion, error) {
	if !questionType.Valid() {
		return nil, fmt.Errorf("%w: invalid question type %q", ErrValidationFailed, questionType)
	}

	questions, err := s.repo.Question().ListByType(ctx, nil, questionType)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	out := make([]models.StudentQuestion, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ForStudent())
	}
	return out, nil
}
