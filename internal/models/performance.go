package models

import "fmt"

type PerformanceLevel string

const (
	PerformanceExcellent        PerformanceLevel = "excellent"
	PerformanceGood             PerformanceLevel = "good"
	PerformanceSatisfactory     PerformanceLevel = "satisfactory"
	PerformanceNeedsImprovement PerformanceLevel = "needs_improvement"
)

// Lower bounds are inclusive.
const (
	ExcellentThreshold    = 90
	GoodThreshold         = 70
	SatisfactoryThreshold = 50
)

func (p PerformanceLevel) Valid() bool {
	switch p {
	case PerformanceExcellent, PerformanceGood, PerformanceSatisfactory, PerformanceNeedsImprovement:
		return true
	}
	return false
}

// Rank orders levels from needs_improvement (0) to excellent (3).
func (p PerformanceLevel) Rank() int {
	switch p {
	case PerformanceExcellent:
		return 3
	case PerformanceGood:
		return 2
	case PerformanceSatisfactory:
		return 1
	default:
		return 0
	}
}

func (p *PerformanceLevel) UnmarshalText(text []byte) error {
	v := PerformanceLevel(text)
	if !v.Valid() {
		return fmt.Errorf("invalid performance level %q", string(text))
	}
	*p = v
	return nil
}

// ClassifyPerformance maps a percentage to its tier.
func ClassifyPerformance(percentage int) PerformanceLevel {
	switch {
	case percentage >= ExcellentThreshold:
		return PerformanceExcellent
	case percentage >= GoodThreshold:
		return PerformanceGood
	case percentage >= SatisfactoryThreshold:
		return PerformanceSatisfactory
	default:
		return PerformanceNeedsImprovement
	}
}

// ScorePercentage returns round(100*correct/total) with halves rounded up, and 0 when
// total is zero.
func ScorePercentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// ScoreSummary is the derived aggregate over one student's attempts of one kind.
type ScoreSummary struct {
	TotalQuestions   int              `json:"total_questions"`
	CorrectAnswers   int              `json:"correct_answers"`
	ScorePercentage  int              `json:"score_percentage"`
	PerformanceLevel PerformanceLevel `json:"performance_level"`
}

func NewScoreSummary(correct, total int) ScoreSummary {
	pct := ScorePercentage(correct, total)
	return ScoreSummary{
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		ScorePercentage:  pct,
		PerformanceLevel: ClassifyPerformance(pct),
	}
}

// Combine merges two summaries by summing their counts, so the result reflects the
// combined correct/total rather than an average of percentages.
func (s ScoreSummary) Combine(other ScoreSummary) ScoreSummary {
	return NewScoreSummary(s.CorrectAnswers+other.CorrectAnswers, s.TotalQuestions+other.TotalQuestions)
}
