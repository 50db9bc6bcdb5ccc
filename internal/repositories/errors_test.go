package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassification(t *testing.T) {
	wrappedDup := fmt.Errorf("failed to create student: %w", gorm.ErrDuplicatedKey)
	wrappedMissing := fmt.Errorf("failed to get student 9: %w", gorm.ErrRecordNotFound)

	assert.True(t, IsDuplicateKeyError(wrappedDup))
	assert.False(t, IsDuplicateKeyError(wrappedMissing))
	assert.True(t, IsNotFoundError(wrappedMissing))
	assert.False(t, IsNotFoundError(errors.New("connection refused")))
}
