package models

import (
	"fmt"
	"time"
)

// AnswerOption is one of the four fixed choices of a question.
type AnswerOption string

const (
	OptionA AnswerOption = "A"
	OptionB AnswerOption = "B"
	OptionC AnswerOption = "C"
	OptionD AnswerOption = "D"
)

func (o AnswerOption) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

func (o *AnswerOption) UnmarshalText(text []byte) error {
	v := AnswerOption(text)
	if !v.Valid() {
		return fmt.Errorf("invalid answer option %q", string(text))
	}
	*o = v
	return nil
}

// AttemptType separates low-stakes practice from the final evaluation.
type AttemptType string

// QuestionType uses the same two values as AttemptType.
type QuestionType = AttemptType

const (
	AttemptQuiz       AttemptType = "quiz"
	AttemptAssessment AttemptType = "assessment"
)

func (t AttemptType) Valid() bool {
	return t == AttemptQuiz || t == AttemptAssessment
}

func (t *AttemptType) UnmarshalText(text []byte) error {
	v, err := ParseAttemptType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseAttemptType validates a raw value coming from a query string or payload.
func ParseAttemptType(s string) (AttemptType, error) {
	v := AttemptType(s)
	if !v.Valid() {
		return "", fmt.Errorf("invalid attempt type %q", s)
	}
	return v, nil
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d *DifficultyLevel) UnmarshalText(text []byte) error {
	v := DifficultyLevel(text)
	if !v.Valid() {
		return fmt.Errorf("invalid difficulty level %q", string(text))
	}
	*d = v
	return nil
}

type QuizQuestion struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	QuestionText    string          `json:"question_text" gorm:"type:text;not null"`
	OptionA         string          `json:"option_a" gorm:"type:text;not null"`
	OptionB         string          `json:"option_b" gorm:"type:text;not null"`
	OptionC         string          `json:"option_c" gorm:"type:text;not null"`
	OptionD         string          `json:"option_d" gorm:"type:text;not null"`
	CorrectAnswer   AnswerOption    `json:"correct_answer" gorm:"type:varchar(1);not null"`
	QuestionType    QuestionType    `json:"question_type" gorm:"type:varchar(16);not null;index"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"type:varchar(16);not null"`
	Topic           string          `json:"topic" gorm:"type:text;not null"`
	Explanation     *string         `json:"explanation" gorm:"type:text"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// IsCorrect reports whether the selected option matches the stored correct option.
func (q *QuizQuestion) IsCorrect(selected AnswerOption) bool {
	return selected == q.CorrectAnswer
}

// StudentQuestion is the view of a question served to students; the answer key and
// explanation are withheld until the question has been answered.
type StudentQuestion struct {
	ID              uint            `json:"id"`
	QuestionText    string          `json:"question_text"`
	OptionA         string          `json:"option_a"`
	OptionB         string          `json:"option_b"`
	OptionC         string          `json:"option_c"`
	OptionD         string          `json:"option_d"`
	QuestionType    QuestionType    `json:"question_type"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level"`
	Topic           string          `json:"topic"`
}

func (q *QuizQuestion) ForStudent() StudentQuestion {
	return StudentQuestion{
		ID:              q.ID,
		QuestionText:    q.QuestionText,
		OptionA:         q.OptionA,
		OptionB:         q.OptionB,
		OptionC:         q.OptionC,
		OptionD:         q.OptionD,
		QuestionType:    q.QuestionType,
		DifficultyLevel: q.DifficultyLevel,
		Topic:           q.Topic,
	}
}
