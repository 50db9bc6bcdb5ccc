package models

import "time"

type LessonStep string

const (
	StepMaterial   LessonStep = "material"
	StepQuiz       LessonStep = "quiz"
	StepAssessment LessonStep = "assessment"
)

func (s LessonStep) Valid() bool {
	switch s {
	case StepMaterial, StepQuiz, StepAssessment:
		return true
	}
	return false
}

// LessonProgress is the per-student run state of one pass through the lesson.
type LessonProgress struct {
	StudentID           uint       `json:"student_id"`
	MaterialViewed      bool       `json:"material_viewed"`
	QuizCompleted       bool       `json:"quiz_completed"`
	AssessmentCompleted bool       `json:"assessment_completed"`
	StartedAt           time.Time  `json:"started_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

// Mark flags a step as done. Steps are independent; a student may return to the
// material after the quiz.
func (p *LessonProgress) Mark(step LessonStep, now time.Time) {
	switch step {
	case StepMaterial:
		p.MaterialViewed = true
	case StepQuiz:
		p.QuizCompleted = true
	case StepAssessment:
		p.AssessmentCompleted = true
	}
	p.UpdatedAt = now
}

// ElapsedMinutes is the whole minutes between the start of the run and now, rounded
// to the nearest minute.
func (p *LessonProgress) ElapsedMinutes(now time.Time) int {
	if p.StartedAt.IsZero() || now.Before(p.StartedAt) {
		return 0
	}
	return int(now.Sub(p.StartedAt).Round(time.Minute) / time.Minute)
}
