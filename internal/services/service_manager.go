package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SAP-F-2025/learning-service/internal/events"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
	"github.com/SAP-F-2025/learning-service/internal/session"
	"github.com/SAP-F-2025/learning-service/internal/validator"
)

// ServiceDependencies holds what the services are built from
type ServiceDependencies struct {
	Repo      repositories.Repository
	Progress  *session.ProgressStore
	Publisher events.EventPublisher
	Logger    *slog.Logger
	Validator *validator.Validator
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps ServiceDependencies

	// Service instances
	studentService     StudentService
	materialService    MaterialService
	questionService    QuestionService
	attemptService     AttemptService
	scoreService       ScoreService
	achievementService AchievementService
	reportService      ReportService
	progressService    ProgressService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(deps ServiceDependencies) ServiceManager {
	return &serviceManager{deps: deps}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.deps.Repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.deps.Validator == nil {
		return fmt.Errorf("validator is required")
	}

	logger := sm.deps.Logger
	logger.Info("Initializing service manager")

	sm.studentService = NewStudentService(sm.deps.Repo, logger, sm.deps.Validator)
	sm.materialService = NewMaterialService(sm.deps.Repo, logger, sm.deps.Validator)
	sm.questionService = NewQuestionService(sm.deps.Repo, logger, sm.deps.Validator)
	sm.attemptService = NewAttemptService(sm.deps.Repo, sm.deps.Publisher, logger, sm.deps.Validator)
	sm.scoreService = NewScoreService(sm.deps.Repo, logger)
	sm.achievementService = NewAchievementService(sm.deps.Repo, sm.scoreService, sm.deps.Progress, sm.deps.Publisher, logger, sm.deps.Validator)
	sm.reportService = NewReportService(sm.deps.Repo, logger)
	sm.progressService = NewProgressService(sm.deps.Repo, sm.deps.Progress, logger)

	if sm.deps.Progress == nil || !sm.deps.Progress.Available() {
		logger.Warn("Lesson progress store not configured; progress endpoints will be unavailable")
	}

	sm.initialized = true
	logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) mustBeReady() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Service getters
func (sm *serviceManager) Student() StudentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.studentService
}

func (sm *serviceManager) Material() MaterialService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.materialService
}

func (sm *serviceManager) Question() QuestionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.questionService
}

func (sm *serviceManager) Attempt() AttemptService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.attemptService
}

func (sm *serviceManager) Score() ScoreService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.scoreService
}

func (sm *serviceManager) Achievement() AchievementService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.achievementService
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.reportService
}

func (sm *serviceManager) Progress() ProgressService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeReady()
	return sm.progressService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	if sm.deps.Progress != nil && sm.deps.Progress.Available() {
		if err := sm.deps.Progress.Ping(ctx); err != nil {
			return fmt.Errorf("progress store health check failed: %w", err)
		}
	}

	return nil
}

// Shutdown closes the event publisher. The repository is owned by its manager.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.Publisher != nil {
		if err := sm.deps.Publisher.Close(); err != nil {
			sm.deps.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")

	return nil
}
