package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesClass(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", ErrExpiryBeforeEntry)

	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.ErrorIs(t, wrapped, ErrExpiryBeforeEntry)
	assert.NotErrorIs(t, wrapped, ErrProductNotFound)
	assert.Equal(t, "expiry date cannot precede entry date", ErrExpiryBeforeEntry.Error())

	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "expiry date cannot precede entry date", vErr.Rule)
}
