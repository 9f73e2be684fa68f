package gormdb

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New("constraint failed: UNIQUE constraint failed: users.username_key (2067)")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_user_id" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: users.user_id")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "user_id" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
