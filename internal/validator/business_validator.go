package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/learning-service/internal/models"
)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates tags for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateAchievementRecord checks the request tags and that every score agrees with
// its counts under the percentage rounding rule
func (bv *BusinessValidator) ValidateAchievementRecord(req *models.RecordAchievementRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)
	if len(errors) > 0 {
		return errors
	}

	snapshot := models.StudentAchievement{
		QuizScore:                req.QuizScore,
		AssessmentScore:          req.AssessmentScore,
		TotalQuizQuestions:       req.TotalQuizQuestions,
		CorrectQuizAnswers:       req.CorrectQuizAnswers,
		TotalAssessmentQuestions: req.TotalAssessmentQuestions,
		CorrectAssessmentAnswers: req.CorrectAssessmentAnswers,
	}
	if err := snapshot.CheckConsistency(); err != nil {
		errors = append(errors, ValidationError{
			Field:   "scores",
			Tag:     "consistent_scores",
			Message: err.Error(),
		})
	}

	return errors
}

// ValidateQuestionCreate validates question creation business rules
func (bv *BusinessValidator) ValidateQuestionCreate(req *models.CreateQuestionRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	seen := make(map[string]models.AnswerOption, 4)
	options := []struct {
		key  models.AnswerOption
		text string
	}{
		{models.OptionA, req.OptionA},
		{models.OptionB, req.OptionB},
		{models.OptionC, req.OptionC},
		{models.OptionD, req.OptionD},
	}
	for _, opt := range options {
		norm := strings.ToLower(strings.TrimSpace(opt.text))
		if norm == "" {
			continue
		}
		if prev, dup := seen[norm]; dup {
			errors = append(errors, ValidationError{
				Field:   "option_" + strings.ToLower(string(opt.key)),
				Tag:     "distinct_options",
				Message: fmt.Sprintf("option %s repeats option %s", opt.key, prev),
			})
			continue
		}
		seen[norm] = opt.key
	}

	return errors
}

// registerBusinessRules registers the enum and range tags
func (bv *BusinessValidator) registerBusinessRules() {
	bv.validate.RegisterValidation("answer_option", func(fl validator.FieldLevel) bool {
		return models.AnswerOption(fl.Field().String()).Valid()
	})

	bv.validate.RegisterValidation("attempt_type", func(fl validator.FieldLevel) bool {
		return models.AttemptType(fl.Field().String()).Valid()
	})

	bv.validate.RegisterValidation("difficulty_level", func(fl validator.FieldLevel) bool {
		return models.DifficultyLevel(fl.Field().String()).Valid()
	})

	bv.validate.RegisterValidation("performance_level", func(fl validator.FieldLevel) bool {
		return models.PerformanceLevel(fl.Field().String()).Valid()
	})

	// Score percentage (0-100)
	bv.validate.RegisterValidation("score_percentage", func(fl validator.FieldLevel) bool {
		score := fl.Field().Int()
		return score >= 0 && score <= 100
	})
}
