package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/SAP-F-2025/learning-service/internal/models"
)

const (
	EventSource  = "learning-service"
	EventVersion = "1.0"
)

const (
	AttemptSubmitted    = "attempt.submitted"
	AchievementRecorded = "achievement.recorded"
)

// Event is the envelope written to the message bus
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewEvent(eventType string, data interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

type AttemptSubmittedData struct {
	AttemptID      uint                `json:"attempt_id"`
	StudentID      uint                `json:"student_id"`
	QuestionID     uint                `json:"question_id"`
	AttemptType    models.AttemptType  `json:"attempt_type"`
	SelectedAnswer models.AnswerOption `json:"selected_answer"`
	IsCorrect      bool                `json:"is_correct"`
}

func NewAttemptSubmittedEvent(attempt *models.QuizAttempt) *Event {
	return NewEvent(AttemptSubmitted, AttemptSubmittedData{
		AttemptID:      attempt.ID,
		StudentID:      attempt.StudentID,
		QuestionID:     attempt.QuestionID,
		AttemptType:    attempt.AttemptType,
		SelectedAnswer: attempt.SelectedAnswer,
		IsCorrect:      attempt.IsCorrect,
	})
}

type AchievementRecordedData struct {
	AchievementID    uint                    `json:"achievement_id"`
	StudentID        uint                    `json:"student_id"`
	QuizScore        int                     `json:"quiz_score"`
	AssessmentScore  int                     `json:"assessment_score"`
	PerformanceLevel models.PerformanceLevel `json:"performance_level"`
	CompletionDate   time.Time               `json:"completion_date"`
}

func NewAchievementRecordedEvent(achievement *models.StudentAchievement) *Event {
	return NewEvent(AchievementRecorded, AchievementRecordedData{
		AchievementID:    achievement.ID,
		StudentID:        achievement.StudentID,
		QuizScore:        achievement.QuizScore,
		AssessmentScore:  achievement.AssessmentScore,
		PerformanceLevel: achievement.PerformanceLevel,
		CompletionDate:   achievement.CompletionDate,
	})
}
