package models

// AttemptDetails mirrors the achievement's stored figures for one attempt kind, with the
// student's attempts of that kind attached as supporting evidence.
type AttemptDetails struct {
	TotalQuestions     int           `json:"total_questions"`
	CorrectAnswers     int           `json:"correct_answers"`
	ScorePercentage    int           `json:"score_percentage"`
	QuestionsAttempted []QuizAttempt `json:"questions_attempted"`
}

// AchievementReport is assembled on every request and never stored.
type AchievementReport struct {
	Student           Student            `json:"student"`
	Achievement       StudentAchievement `json:"achievement"`
	QuizDetails       AttemptDetails     `json:"quiz_details"`
	AssessmentDetails AttemptDetails     `json:"assessment_details"`
}
