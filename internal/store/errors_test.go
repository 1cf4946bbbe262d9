package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTopicNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrArticleNotFound))
	assert.True(t, IsNotFoundError(ErrCommentNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrArticleNotFound)))

	// Page-out-of-range is a 404 at the HTTP boundary but is not a
	// "not found" in the referential sense.
	assert.False(t, IsNotFoundError(ErrPageOutOfRange))
	assert.False(t, IsNotFoundError(ErrInvalidBody))
	assert.False(t, IsNotFoundError(nil))
}
