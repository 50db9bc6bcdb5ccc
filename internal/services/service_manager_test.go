package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/session"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

func TestServiceManager_Lifecycle(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	sm := NewServiceManager(ServiceDependencies{
		Repo:      newFakeRepository(),
		Progress:  session.NewProgressStore(nil, time.Hour),
		Publisher: events.NewMockEventPublisher(logger),
		Logger:    logger,
		Validator: validator.New(),
	})

	assert.Error(t, sm.HealthCheck(ctx))
	assert.Panics(t, func() { sm.Student() })

	require.NoError(t, sm.Initialize(ctx))
	require.NoError(t, sm.Initialize(ctx))
	assert.NotNil(t, sm.Report())
	assert.NotNil(t, sm.Progress())

	// a missing Redis client disables progress without failing health
	assert.NoError(t, sm.HealthCheck(ctx))

	_, err := sm.Progress().GetProgress(ctx, 1)
	assert.ErrorIs(t, err, ErrProgressUnavailable)

	require.NoError(t, sm.Shutdown(ctx))
	assert.Error(t, sm.HealthCheck(ctx))
}

func TestServiceManager_HealthCheckPingsRedis(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sm := NewServiceManager(ServiceDependencies{
		Repo:      newFakeRepository(),
		Progress:  session.NewProgressStore(client, time.Hour),
		Logger:    logger,
		Validator: validator.New(),
	})
	require.NoError(t, sm.Initialize(ctx))
	assert.NoError(t, sm.HealthCheck(ctx))

	mr.Close()
	assert.Error(t, sm.HealthCheck(ctx))
}

func TestServiceManager_RequiresRepository(t *testing.T) {
	sm := NewServiceManager(ServiceDependencies{Logger: newTestLogger(), Validator: validator.New()})
	assert.EqualError(t, sm.Initialize(context.Background()), "repository is required")
}
