package models

import (
	"fmt"
	"time"
)

// StudentAchievement is a frozen snapshot of one completion event.
type StudentAchievement struct {
	ID                       uint             `json:"id" gorm:"primaryKey"`
	StudentID                uint             `json:"student_id" gorm:"not null;index:idx_achievement_student_completion"`
	QuizScore                int              `json:"quiz_score" gorm:"not null"`
	AssessmentScore          int              `json:"assessment_score" gorm:"not null"`
	TotalQuizQuestions       int              `json:"total_quiz_questions" gorm:"not null"`
	CorrectQuizAnswers       int              `json:"correct_quiz_answers" gorm:"not null"`
	TotalAssessmentQuestions int              `json:"total_assessment_questions" gorm:"not null"`
	CorrectAssessmentAnswers int              `json:"correct_assessment_answers" gorm:"not null"`
	CompletionDate           time.Time        `json:"completion_date" gorm:"not null;index:idx_achievement_student_completion"`
	TimeSpentMinutes         *int             `json:"time_spent_minutes"`
	PerformanceLevel         PerformanceLevel `json:"performance_level" gorm:"type:varchar(32);not null"`
	CreatedAt                time.Time        `json:"created_at" gorm:"not null;autoCreateTime"`

	// Relations
	Student *Student `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`
}

func (StudentAchievement) TableName() string {
	return "student_achievements"
}

// QuizSummary rebuilds the stored quiz figures as a ScoreSummary.
func (a *StudentAchievement) QuizSummary() ScoreSummary {
	return ScoreSummary{
		TotalQuestions:   a.TotalQuizQuestions,
		CorrectAnswers:   a.CorrectQuizAnswers,
		ScorePercentage:  a.QuizScore,
		PerformanceLevel: ClassifyPerformance(a.QuizScore),
	}
}

func (a *StudentAchievement) AssessmentSummary() ScoreSummary {
	return ScoreSummary{
		TotalQuestions:   a.TotalAssessmentQuestions,
		CorrectAnswers:   a.CorrectAssessmentAnswers,
		ScorePercentage:  a.AssessmentScore,
		PerformanceLevel: ClassifyPerformance(a.AssessmentScore),
	}
}

// CheckConsistency verifies the count fields against the percentages under the same
// rounding rule used by ScorePercentage.
func (a *StudentAchievement) CheckConsistency() error {
	if err := checkCounts("quiz", a.QuizScore, a.CorrectQuizAnswers, a.TotalQuizQuestions); err != nil {
		return err
	}
	return checkCounts("assessment", a.AssessmentScore, a.CorrectAssessmentAnswers, a.TotalAssessmentQuestions)
}

func checkCounts(kind string, score, correct, total int) error {
	if total < 0 || correct < 0 {
		return fmt.Errorf("%s counts must not be negative", kind)
	}
	if correct > total {
		return fmt.Errorf("%s correct answers (%d) exceed total questions (%d)", kind, correct, total)
	}
	if want := ScorePercentage(correct, total); want != score {
		return fmt.Errorf("%s score %d does not match %d/%d (expected %d)", kind, score, correct, total, want)
	}
	return nil
}
