package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

func setupAttemptService(t *testing.T) (*fakeRepository, *events.MockEventPublisher, AttemptService) {
	t.Helper()
	repo := newFakeRepository()
	logger := newTestLogger()
	publisher := events.NewMockEventPublisher(logger)
	return repo, publisher, NewAttemptService(repo, publisher, logger, validator.New())
}

func TestAttemptService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("records correctness against the answer key", func(t *testing.T) {
		repo, publisher, svc := setupAttemptService(t)
		student := repo.addStudent("Ana", "ana@example.com")
		question := repo.addQuestion(models.AttemptQuiz, models.OptionC)

		right, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: question.ID, SelectedAnswer: models.OptionC, AttemptType: models.AttemptQuiz,
		})
		require.NoError(t, err)
		assert.True(t, right.IsCorrect)
		assert.NotZero(t, right.ID)

		wrong, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: question.ID, SelectedAnswer: models.OptionA, AttemptType: models.AttemptQuiz,
		})
		require.NoError(t, err)
		assert.False(t, wrong.IsCorrect)

		published := publisher.GetPublishedEvents()
		require.Len(t, published, 2)
		assert.Equal(t, events.AttemptSubmitted, published[0].Type)
		assert.Equal(t, events.EventSource, published[0].Source)
		data, ok := published[1].Data.(events.AttemptSubmittedData)
		require.True(t, ok)
		assert.Equal(t, wrong.ID, data.AttemptID)
		assert.False(t, data.IsCorrect)
	})

	t.Run("response reveals the answer key and explanation", func(t *testing.T) {
		repo, _, svc := setupAttemptService(t)
		student := repo.addStudent("Ana", "ana@example.com")
		explanation := "Halving 8 gives 4."
		question := &models.QuizQuestion{
			QuestionText: "8/2 = ?", OptionA: "2", OptionB: "4", OptionC: "6", OptionD: "16",
			CorrectAnswer: models.OptionB, QuestionType: models.AttemptQuiz,
			DifficultyLevel: models.DifficultyEasy, Topic: "division", Explanation: &explanation,
		}
		require.NoError(t, repo.Question().Create(ctx, nil, question))

		result, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: question.ID, SelectedAnswer: models.OptionD, AttemptType: models.AttemptQuiz,
		})
		require.NoError(t, err)
		assert.False(t, result.IsCorrect)
		assert.Equal(t, models.OptionD, result.SelectedAnswer)
		assert.Equal(t, models.OptionB, result.CorrectAnswer)
		require.NotNil(t, result.Explanation)
		assert.Equal(t, explanation, *result.Explanation)

		raw, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"correct_answer":"B"`)
		assert.Contains(t, string(raw), `"explanation":"Halving 8 gives 4."`)
		assert.Contains(t, string(raw), `"selected_answer":"D"`)
	})

	t.Run("unknown student creates nothing", func(t *testing.T) {
		repo, publisher, svc := setupAttemptService(t)
		question := repo.addQuestion(models.AttemptQuiz, models.OptionA)

		_, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: 999, QuestionID: question.ID, SelectedAnswer: models.OptionA, AttemptType: models.AttemptQuiz,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "student", nf.Resource)
		assert.Equal(t, 0, repo.attemptCount())
		assert.Empty(t, publisher.GetPublishedEvents())
	})

	t.Run("unknown question creates nothing", func(t *testing.T) {
		repo, _, svc := setupAttemptService(t)
		student := repo.addStudent("Ana", "ana@example.com")

		_, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: 4242, SelectedAnswer: models.OptionA, AttemptType: models.AttemptAssessment,
		})
		assert.EqualError(t, err, "question with ID 4242 not found")
		assert.Equal(t, 0, repo.attemptCount())
	})

	t.Run("invalid option is rejected", func(t *testing.T) {
		repo, _, svc := setupAttemptService(t)
		student := repo.addStudent("Ana", "ana@example.com")
		question := repo.addQuestion(models.AttemptQuiz, models.OptionA)

		_, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: question.ID, SelectedAnswer: "Z", AttemptType: models.AttemptQuiz,
		})
		assert.ErrorIs(t, err, ErrValidationFailed)
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
		assert.Equal(t, 0, repo.attemptCount())
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		repo, publisher, svc := setupAttemptService(t)
		publisher.FailWith(errors.New("broker down"))
		student := repo.addStudent("Ana", "ana@example.com")
		question := repo.addQuestion(models.AttemptQuiz, models.OptionB)

		attempt, err := svc.SubmitAnswer(ctx, &models.SubmitAnswerRequest{
			StudentID: student.ID, QuestionID: question.ID, SelectedAnswer: models.OptionB, AttemptType: models.AttemptQuiz,
		})
		require.NoError(t, err)
		assert.True(t, attempt.IsCorrect)
		assert.Equal(t, 1, repo.attemptCount())
	})
}

func TestAttemptService_GetStudentAttempts(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setupAttemptService(t)
	student := repo.addStudent("Ana", "ana@example.com")
	other := repo.addStudent("Ben", "ben@example.com")
	repo.addAttempts(student.ID, models.AttemptQuiz, 1, 1)
	repo.addAttempts(student.ID, models.AttemptAssessment, 1, 0)
	repo.addAttempts(other.ID, models.AttemptQuiz, 3, 0)

	all, err := svc.GetStudentAttempts(ctx, student.ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.Before(all[i-1].CreatedAt))
	}

	quiz := models.AttemptQuiz
	onlyQuiz, err := svc.GetStudentAttempts(ctx, student.ID, &quiz)
	require.NoError(t, err)
	require.Len(t, onlyQuiz, 2)
	for _, a := range onlyQuiz {
		assert.Equal(t, models.AttemptQuiz, a.AttemptType)
		assert.Equal(t, student.ID, a.StudentID)
	}

	bad := models.AttemptType("exam")
	_, err = svc.GetStudentAttempts(ctx, student.ID, &bad)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
