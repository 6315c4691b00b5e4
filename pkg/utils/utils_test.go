package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"exact pages", 1, 10, 30, 3},
		{"partial last page", 2, 10, 31, 4},
		{"empty", 1, 10, 0, 0},
		{"single item", 1, 10, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.limit, p.ItemsPerPage)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "correct horse battery staple"))
	assert.Error(t, ComparePasswords(hash, "wrong password"))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.Equal(t, 400, ValidationError("bad input").Code)
	assert.Equal(t, 404, NotFoundError("Coin").Code)
	assert.Equal(t, "Coin not found", NotFoundError("Coin").Message)

	storage := StorageError(assert.AnError)
	assert.Equal(t, 500, storage.Code)
	// The caller-facing message stays generic; the detail is for logs only.
	assert.Equal(t, "Internal server error", storage.Message)
	assert.Equal(t, assert.AnError.Error(), storage.Details)
}

func TestAsUnwrapsCustomErrors(t *testing.T) {
	var appErr *CustomError

	assert.True(t, As(ValidationError("nope"), &appErr))
	assert.Equal(t, 400, appErr.Code)

	assert.False(t, As(assert.AnError, &appErr))
	assert.False(t, As(nil, &appErr))
}
