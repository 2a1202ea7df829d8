package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/store"
)

func TestValidateLimit(t *testing.T) {
	for _, limit := range []int64{1, 50, 100} {
		assert.NoError(t, store.ValidateLimit(limit))
	}
	for _, limit := range []int64{-1, 0, 101, 1000} {
		assert.ErrorIs(t, store.ValidateLimit(limit), store.ErrLimitOutOfRange, limit)
	}
}
