package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedItem struct {
	Name  string `json:"name" validate:"required,max=10"`
	Year  *int   `json:"year" validate:"omitempty,plausible_year"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	verr := v.Validate(&validatedItem{})
	require.NotNil(t, verr)
	assert.Equal(t, "name is required", verr.First())
}

func TestPlausibleYear(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		year  int
		valid bool
	}{
		{"ancient", 1, true},
		{"typical", 1704, true},
		{"next year issue", 2027, true},
		{"negative", -50, false},
		{"far future", 3000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year := tt.year
			verr := v.Validate(&validatedItem{Name: "x", Year: &year})
			if tt.valid {
				assert.Nil(t, verr)
			} else {
				require.NotNil(t, verr)
				assert.Equal(t, "year must be a plausible calendar year", verr.First())
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.Validate(&validatedItem{Name: "x", Color: "#FF9500"}))
	assert.Nil(t, v.Validate(&validatedItem{Name: "x", Color: "#abc"}))
	assert.NotNil(t, v.Validate(&validatedItem{Name: "x", Color: "red"}))
	assert.NotNil(t, v.Validate(&validatedItem{Name: "x", Color: "#GG0000"}))
}

func TestNilErrorResponseFirst(t *testing.T) {
	var verr *ErrorResponse
	assert.Equal(t, "Validation failed", verr.First())
}
