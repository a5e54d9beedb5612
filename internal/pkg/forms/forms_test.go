package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forumForm struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
}

type moduleForm struct {
	Title    string `json:"title" validate:"required,min=3,max=100"`
	OrderIdx int    `json:"order_idx" validate:"gte=0"`
}

type courseForm struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

type voteForm struct {
	Type string `json:"type" validate:"required,oneof=up down"`
}

func TestValidateAcceptsValidForm(t *testing.T) {
	result := Validate(forumForm{
		Title:       "Midterm Q&A",
		Description: "Questions about the midterm",
	})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateTitleBounds(t *testing.T) {
	result := Validate(forumForm{Title: "ab", Description: "long enough text"})
	require.False(t, result.Valid)
	assert.Equal(t, "must be at least 3 characters", result.ErrorFor("title"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	result = Validate(forumForm{Title: string(long), Description: "long enough text"})
	require.False(t, result.Valid)
	assert.Equal(t, "must be at most 100 characters", result.ErrorFor("title"))
}

func TestValidateRequiredFieldKeyedByJSONName(t *testing.T) {
	result := Validate(forumForm{})
	require.False(t, result.Valid)
	assert.Equal(t, "this field is required", result.ErrorFor("title"))
	assert.Equal(t, "this field is required", result.ErrorFor("description"))
}

func TestValidateDescriptionBounds(t *testing.T) {
	result := Validate(forumForm{Title: "Valid", Description: "too short"})
	require.False(t, result.Valid)
	assert.Equal(t, "must be at least 10 characters", result.ErrorFor("description"))
}

func TestValidateOrderIdxNonNegative(t *testing.T) {
	result := Validate(moduleForm{Title: "Unit 1", OrderIdx: -1})
	require.False(t, result.Valid)
	assert.Equal(t, "must be greater than or equal to 0", result.ErrorFor("order_idx"))

	assert.True(t, Validate(moduleForm{Title: "Unit 1", OrderIdx: 0}).Valid)
}

func TestValidateDateRange(t *testing.T) {
	now := time.Now()
	result := Validate(courseForm{StartDate: now, EndDate: now.Add(-time.Hour)})
	require.False(t, result.Valid)
	assert.Equal(t, "must not be before StartDate", result.ErrorFor("end_date"))

	assert.True(t, Validate(courseForm{StartDate: now, EndDate: now.Add(time.Hour)}).Valid)
}

func TestValidateEnumMembership(t *testing.T) {
	result := Validate(voteForm{Type: "sideways"})
	require.False(t, result.Valid)
	assert.Equal(t, "must be one of: up, down", result.ErrorFor("type"))

	assert.True(t, Validate(voteForm{Type: "up"}).Valid)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"lower bound", "0", 0, false},
		{"upper bound", "100", 100, false},
		{"mid range", "85", 85, false},
		{"above range", "101", 0, true},
		{"negative", "-1", 0, true},
		{"non numeric", "abc", 0, true},
		{"decimal", "9.5", 0, true},
		{"empty", "", 0, true},
		{"trims whitespace", " 42 ", 42, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScore(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
