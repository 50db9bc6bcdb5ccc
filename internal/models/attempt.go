package models

import "time"

// QuizAttempt is one recorded answer. Rows are append-only: IsCorrect is computed once
// at submission against the question's correct option and never recomputed.
type QuizAttempt struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	StudentID      uint         `json:"student_id" gorm:"not null;index:idx_attempt_student_type"`
	QuestionID     uint         `json:"question_id" gorm:"not null;index"`
	SelectedAnswer AnswerOption `json:"selected_answer" gorm:"type:varchar(1);not null"`
	IsCorrect      bool         `json:"is_correct" gorm:"not null"`
	AttemptType    AttemptType  `json:"attempt_type" gorm:"type:varchar(16);not null;index:idx_attempt_student_type"`
	CreatedAt      time.Time    `json:"created_at" gorm:"not null;autoCreateTime"`

	// Relations
	Student  *Student      `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`
	Question *QuizQuestion `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// SubmitAnswerResponse is the recorded attempt plus the answer key and explanation,
// which a student only sees once the question has been answered.
type SubmitAnswerResponse struct {
	QuizAttempt
	CorrectAnswer AnswerOption `json:"correct_answer"`
	Explanation   *string      `json:"explanation"`
}

func NewSubmitAnswerResponse(attempt *QuizAttempt, question *QuizQuestion) *SubmitAnswerResponse {
	return &SubmitAnswerResponse{
		QuizAttempt:   *attempt,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}
}
