package repositories

import "context"

// Repository aggregates the repositories of the learning domain
type Repository interface {
	Student() StudentRepository
	Material() MaterialRepository
	Question() QuestionRepository
	Attempt() AttemptRepository
	Achievement() AchievementRepository

	// Transaction support. Repositories handed to fn are bound to the transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
