package models

type CreateStudentRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Grade string `json:"grade" validate:"required,min=1,max=50"`
}

type CreateMaterialSectionRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
	Topic   string `json:"topic" validate:"required,min=1,max=100"`
	Order   int    `json:"order" validate:"min=0"`
}

type CreateQuestionRequest struct {
	QuestionText    string          `json:"question_text" validate:"required,min=1"`
	OptionA         string          `json:"option_a" validate:"required,min=1"`
	OptionB         string          `json:"option_b" validate:"required,min=1"`
	OptionC         string          `json:"option_c" validate:"required,min=1"`
	OptionD         string          `json:"option_d" validate:"required,min=1"`
	CorrectAnswer   AnswerOption    `json:"correct_answer" validate:"required,answer_option"`
	QuestionType    QuestionType    `json:"question_type" validate:"required,attempt_type"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" validate:"required,difficulty_level"`
	Topic           string          `json:"topic" validate:"required,min=1"`
	Explanation     *string         `json:"explanation" validate:"omitempty,max=2000"`
}

type SubmitAnswerRequest struct {
	StudentID      uint         `json:"student_id" validate:"required"`
	QuestionID     uint         `json:"question_id" validate:"required"`
	SelectedAnswer AnswerOption `json:"selected_answer" validate:"required,answer_option"`
	AttemptType    AttemptType  `json:"attempt_type" validate:"required,attempt_type"`
}

type RecordAchievementRequest struct {
	StudentID                uint             `json:"student_id" validate:"required"`
	QuizScore                int              `json:"quiz_score" validate:"score_percentage"`
	AssessmentScore          int              `json:"assessment_score" validate:"score_percentage"`
	TotalQuizQuestions       int              `json:"total_quiz_questions" validate:"min=0"`
	CorrectQuizAnswers       int              `json:"correct_quiz_answers" validate:"min=0,ltefield=TotalQuizQuestions"`
	TotalAssessmentQuestions int              `json:"total_assessment_questions" validate:"min=0"`
	CorrectAssessmentAnswers int              `json:"correct_assessment_answers" validate:"min=0,ltefield=TotalAssessmentQuestions"`
	TimeSpentMinutes         *int             `json:"time_spent_minutes" validate:"omitempty,min=0"`
	PerformanceLevel         PerformanceLevel `json:"performance_level" validate:"required,performance_level"`
}

type CompleteLessonRequest struct {
	TimeSpentMinutes *int `json:"time_spent_minutes" validate:"omitempty,min=0"`
}
