package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/learning-service/internal/models"
)

const progressPrefix = "progress:"

// ProgressStore persists per-student lesson progress with a sliding TTL
type ProgressStore struct {
	store *Store
	ttl   time.Duration
}

func NewProgressStore(client *redis.Client, ttl time.Duration) *ProgressStore {
	return &ProgressStore{
		store: NewStore(client, progressPrefix),
		ttl:   ttl,
	}
}

func (p *ProgressStore) Available() bool {
	return p.store.Available()
}

func (p *ProgressStore) Ping(ctx context.Context) error {
	return p.store.Ping(ctx)
}

// Load returns the stored progress, or ErrStateNotFound when none exists or it expired
func (p *ProgressStore) Load(ctx context.Context, studentID uint) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	if err := p.store.Get(ctx, progressKey(studentID), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// LoadOrStart returns the stored progress, starting a fresh run at now when none exists
func (p *ProgressStore) LoadOrStart(ctx context.Context, studentID uint, now time.Time) (*models.LessonProgress, error) {
	progress, err := p.Load(ctx, studentID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, ErrStateNotFound) {
		return nil, err
	}
	return &models.LessonProgress{
		StudentID: studentID,
		StartedAt: now,
		UpdatedAt: now,
	}, nil
}

func (p *ProgressStore) Save(ctx context.Context, progress *models.LessonProgress) error {
	if err := p.store.Set(ctx, progressKey(progress.StudentID), progress, p.ttl); err != nil {
		return fmt.Errorf("failed to save progress for student %d: %w", progress.StudentID, err)
	}
	return nil
}

func (p *ProgressStore) Reset(ctx context.Context, studentID uint) error {
	if err := p.store.Delete(ctx, progressKey(studentID)); err != nil {
		return fmt.Errorf("failed to reset progress for student %d: %w", studentID, err)
	}
	return nil
}

func progressKey(studentID uint) string {
	return fmt.Sprintf("student:%d", studentID)
}
