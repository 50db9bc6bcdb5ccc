package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

// sqlRecorder keeps the SQL gorm builds in dry-run mode, so query shape can be checked
// without a database
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements, "no statement was built")
	// gorm joins ORDER BY columns with a bare comma
	return strings.ReplaceAll(r.statements[len(r.statements)-1], ", ", ",")
}

func setupDryRunRepository(t *testing.T) (*PostgreSQLRepository, *sqlRecorder) {
	t.Helper()
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=learning dbname=learning sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{}
	capture := func(tx *gorm.DB) {
		rec.statements = append(rec.statements, tx.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Row().After("gorm:row").Register("test:capture_row", capture))

	return newPostgreSQLRepository(db), rec
}

func TestStudentQueries(t *testing.T) {
	ctx := context.Background()
	repo, rec := setupDryRunRepository(t)

	_, _ = repo.Student().GetByIDForShare(ctx, nil, 7)
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "students"`)
	assert.True(t, strings.HasSuffix(sql, "FOR SHARE"), sql)

	_, _ = repo.Student().GetByID(ctx, nil, 7)
	assert.NotContains(t, rec.last(t), "FOR SHARE")

	_, _ = repo.Student().List(ctx, nil, repositories.StudentFilters{SortBy: "created_at", SortOrder: "desc"})
	assert.Contains(t, rec.last(t), "ORDER BY created_at DESC,id DESC")

	_, _ = repo.Student().List(ctx, nil, repositories.StudentFilters{SortBy: "password; DROP TABLE students", SortOrder: "asc"})
	assert.Contains(t, rec.last(t), "ORDER BY created_at ASC,id ASC")
}

func TestAttemptQueries(t *testing.T) {
	ctx := context.Background()
	repo, rec := setupDryRunRepository(t)

	quiz := models.AttemptQuiz
	_, _ = repo.Attempt().GetByStudent(ctx, nil, 1, repositories.AttemptFilters{AttemptType: &quiz})
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "quiz_attempts"`)
	assert.Contains(t, sql, "student_id = $1")
	assert.Contains(t, sql, "attempt_type = $2")
	assert.True(t, strings.HasSuffix(sql, "ORDER BY created_at ASC,id ASC"), sql)

	_, _ = repo.Attempt().GetByStudent(ctx, nil, 1, repositories.AttemptFilters{})
	assert.NotContains(t, rec.last(t), "attempt_type")

	_, _ = repo.Attempt().CountByStudentAndType(ctx, nil, 1, models.AttemptAssessment)
	sql = rec.last(t)
	assert.Contains(t, sql, "COUNT(*) AS total,COUNT(*) FILTER (WHERE is_correct) AS correct")
	assert.Contains(t, sql, "student_id = $1 AND attempt_type = $2")
}

func TestAchievementQueries(t *testing.T) {
	ctx := context.Background()
	repo, rec := setupDryRunRepository(t)

	_, _ = repo.Achievement().GetLatestByStudent(ctx, nil, 1)
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "student_achievements"`)
	assert.Contains(t, sql, "ORDER BY completion_date DESC,id DESC LIMIT")

	_, _ = repo.Achievement().GetByIDAndStudent(ctx, nil, 3, 1)
	assert.Contains(t, rec.last(t), "id = $1 AND student_id = $2")

	_, _ = repo.Achievement().ListByStudent(ctx, nil, 1)
	assert.True(t, strings.HasSuffix(rec.last(t), "ORDER BY completion_date DESC,id DESC"))
}

func TestContentQueries(t *testing.T) {
	ctx := context.Background()
	repo, rec := setupDryRunRepository(t)

	_, _ = repo.Material().List(ctx, nil)
	assert.Contains(t, rec.last(t), `ORDER BY "order",id`)

	_, _ = repo.Question().ListByType(ctx, nil, models.AttemptAssessment)
	sql := rec.last(t)
	assert.Contains(t, sql, "question_type = $1")
	assert.Contains(t, sql, "ORDER BY RANDOM()")
}
