package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

// fakeRepository is an in-memory Repository. Rows get increasing ids and created_at
// values one second apart so ordering is deterministic.
type fakeRepository struct {
	mu           sync.Mutex
	students     map[uint]*models.Student
	materials    []*models.MaterialSection
	questions    map[uint]*models.QuizQuestion
	attempts     []*models.QuizAttempt
	achievements []*models.StudentAchievement
	nextID       uint
	clock        time.Time

	// attemptErr is returned by every attempt read when set
	attemptErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		students:  make(map[uint]*models.Student),
		questions: make(map[uint]*models.QuizQuestion),
		clock:     time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *fakeRepository) next() (uint, time.Time) {
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	return r.nextID, r.clock
}

func notFound(what string, id uint) error {
	return fmt.Errorf("failed to get %s %d: %w", what, id, gorm.ErrRecordNotFound)
}

func (r *fakeRepository) Student() repositories.StudentRepository         { return fakeStudents{r} }
func (r *fakeRepository) Material() repositories.MaterialRepository       { return fakeMaterials{r} }
func (r *fakeRepository) Question() repositories.QuestionRepository       { return fakeQuestions{r} }
func (r *fakeRepository) Attempt() repositories.AttemptRepository         { return fakeAttempts{r} }
func (r *fakeRepository) Achievement() repositories.AchievementRepository { return fakeAchievements{r} }
func (r *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}
func (r *fakeRepository) Ping(ctx context.Context) error { return nil }
func (r *fakeRepository) Close() error                   { return nil }

// ===== SEEDING HELPERS =====

func (r *fakeRepository) addStudent(name, email string) *models.Student {
	s := &models.Student{Name: name, Email: email, Grade: "5"}
	if err := r.Student().Create(context.Background(), nil, s); err != nil {
		panic(err)
	}
	return s
}

func (r *fakeRepository) addQuestion(qType models.QuestionType, correct models.AnswerOption) *models.QuizQuestion {
	q := &models.QuizQuestion{
		QuestionText:    "question",
		OptionA:         "a",
		OptionB:         "b",
		OptionC:         "c",
		OptionD:         "d",
		CorrectAnswer:   correct,
		QuestionType:    qType,
		DifficultyLevel: models.DifficultyMedium,
		Topic:           "fractions",
	}
	if err := r.Question().Create(context.Background(), nil, q); err != nil {
		panic(err)
	}
	return q
}

// addAttempts stores correct and incorrect attempts for one type directly
func (r *fakeRepository) addAttempts(studentID uint, attemptType models.AttemptType, correct, incorrect int) {
	for i := 0; i < correct+incorrect; i++ {
		a := &models.QuizAttempt{
			StudentID:      studentID,
			QuestionID:     100,
			SelectedAnswer: models.OptionA,
			IsCorrect:      i < correct,
			AttemptType:    attemptType,
		}
		if err := r.Attempt().Create(context.Background(), nil, a); err != nil {
			panic(err)
		}
	}
}

func (r *fakeRepository) attemptCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attempts)
}

func (r *fakeRepository) achievementCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.achievements)
}

// ===== STUDENTS =====

type fakeStudents struct{ r *fakeRepository }

func (f fakeStudents) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	for _, s := range f.r.students {
		if s.Email == student.Email {
			return fmt.Errorf("failed to create student: %w", gorm.ErrDuplicatedKey)
		}
	}
	student.ID, student.CreatedAt = f.r.next()
	cp := *student
	f.r.students[student.ID] = &cp
	return nil
}

func (f fakeStudents) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	s, ok := f.r.students[id]
	if !ok {
		return nil, notFound("student", id)
	}
	cp := *s
	return &cp, nil
}

func (f fakeStudents) GetByIDForShare(ctx context.Context, tx *gorm.DB, id uint) (*models.Student, error) {
	return f.GetByID(ctx, tx, id)
}

func (f fakeStudents) List(ctx context.Context, tx *gorm.DB, filters repositories.StudentFilters) ([]*models.Student, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	out := make([]*models.Student, 0, len(f.r.students))
	for _, s := range f.r.students {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f fakeStudents) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	_, ok := f.r.students[id]
	return ok, nil
}

// ===== MATERIAL =====

type fakeMaterials struct{ r *fakeRepository }

func (f fakeMaterials) Create(ctx context.Context, tx *gorm.DB, section *models.MaterialSection) error {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	section.ID, section.CreatedAt = f.r.next()
	cp := *section
	f.r.materials = append(f.r.materials, &cp)
	return nil
}

func (f fakeMaterials) List(ctx context.Context, tx *gorm.DB) ([]*models.MaterialSection, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	out := make([]*models.MaterialSection, 0, len(f.r.materials))
	for _, m := range f.r.materials {
		cp := *m
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// ===== QUESTIONS =====

type fakeQuestions struct{ r *fakeRepository }

func (f fakeQuestions) Create(ctx context.Context, tx *gorm.DB, question *models.QuizQuestion) error {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	question.ID, question.CreatedAt = f.r.next()
	cp := *question
	f.r.questions[question.ID] = &cp
	return nil
}

func (f fakeQuestions) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.QuizQuestion, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	q, ok := f.r.questions[id]
	if !ok {
		return nil, notFound("question", id)
	}
	cp := *q
	return &cp, nil
}

func (f fakeQuestions) ListByType(ctx context.Context, tx *gorm.DB, questionType models.QuestionType) ([]*models.QuizQuestion, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	var out []*models.QuizQuestion
	for _, q := range f.r.questions {
		if q.QuestionType == questionType {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ===== ATTEMPTS =====

type fakeAttempts struct{ r *fakeRepository }

func (f fakeAttempts) Create(ctx context.Context, tx *gorm.DB, attempt *models.QuizAttempt) error {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	attempt.ID, attempt.CreatedAt = f.r.next()
	cp := *attempt
	f.r.attempts = append(f.r.attempts, &cp)
	return nil
}

func (f fakeAttempts) GetByStudent(ctx context.Context, tx *gorm.DB, studentID uint, filters repositories.AttemptFilters) ([]*models.QuizAttempt, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	if f.r.attemptErr != nil {
		return nil, fmt.Errorf("failed to get attempts for student %d: %w", studentID, f.r.attemptErr)
	}
	var out []*models.QuizAttempt
	for _, a := range f.r.attempts {
		if a.StudentID != studentID {
			continue
		}
		if filters.AttemptType != nil && a.AttemptType != *filters.AttemptType {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f fakeAttempts) CountByStudentAndType(ctx context.Context, tx *gorm.DB, studentID uint, attemptType models.AttemptType) (*repositories.AttemptCounts, error) {
	attempts, err := f.GetByStudent(ctx, tx, studentID, repositories.AttemptFilters{AttemptType: &attemptType})
	if err != nil {
		return nil, err
	}
	counts := &repositories.AttemptCounts{Total: len(attempts)}
	for _, a := range attempts {
		if a.IsCorrect {
			counts.Correct++
		}
	}
	return counts, nil
}

// ===== ACHIEVEMENTS =====

type fakeAchievements struct{ r *fakeRepository }

func (f fakeAchievements) Create(ctx context.Context, tx *gorm.DB, achievement *models.StudentAchievement) error {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	achievement.ID, achievement.CreatedAt = f.r.next()
	cp := *achievement
	f.r.achievements = append(f.r.achievements, &cp)
	return nil
}

func (f fakeAchievements) GetByIDAndStudent(ctx context.Context, tx *gorm.DB, id, studentID uint) (*models.StudentAchievement, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	for _, a := range f.r.achievements {
		if a.ID == id && a.StudentID == studentID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, notFound("achievement", id)
}

func (f fakeAchievements) GetLatestByStudent(ctx context.Context, tx *gorm.DB, studentID uint) (*models.StudentAchievement, error) {
	list, _ := f.ListByStudent(ctx, tx, studentID)
	if len(list) == 0 {
		return nil, notFound("latest achievement for student", studentID)
	}
	return list[0], nil
}

func (f fakeAchievements) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.StudentAchievement, error) {
	f.r.mu.Lock()
	defer f.r.mu.Unlock()
	var out []*models.StudentAchievement
	for _, a := range f.r.achievements {
		if a.StudentID == studentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CompletionDate.Equal(out[j].CompletionDate) {
			return out[i].CompletionDate.After(out[j].CompletionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
