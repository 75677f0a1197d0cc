package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termOfLength(days int) *AcademicTerm {
	start := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	return &AcademicTerm{
		Name:      Term1,
		Year:      2025,
		StartDate: CustomDate{Time: start},
		EndDate:   CustomDate{Time: start.AddDate(0, 0, days)},
	}
}

func TestTermLabel(t *testing.T) {
	term := termOfLength(90)
	assert.Equal(t, "Term 1 2025", term.Label())
}

func TestTermValidate(t *testing.T) {
	assert.NoError(t, termOfLength(MinTermDays).Validate())
	assert.NoError(t, termOfLength(90).Validate())
	assert.NoError(t, termOfLength(MaxTermDays).Validate())
}

func TestTermValidateTooShort(t *testing.T) {
	err := termOfLength(MinTermDays - 1).Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "end_date", vErr.Field)
	assert.Equal(t, "Term duration seems too short (less than 60 days). Please verify dates.", vErr.Message)
}

func TestTermValidateTooLong(t *testing.T) {
	err := termOfLength(MaxTermDays + 1).Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "end_date", vErr.Field)
	assert.Equal(t, "Term duration seems too long (more than 120 days). Please verify dates.", vErr.Message)
}

func TestTermValidateEndBeforeStart(t *testing.T) {
	err := termOfLength(-10).Validate()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "end_date", vErr.Field)
	assert.Equal(t, "End date must be after the start date.", vErr.Message)

	// A zero-length term is just as invalid as a reversed one.
	err = termOfLength(0).Validate()
	require.Error(t, err)
	assert.Equal(t, "End date must be after the start date.", err.(*ValidationError).Message)
}

func TestTermValidateMissingDates(t *testing.T) {
	term := &AcademicTerm{Name: Term1, Year: 2025}
	err := term.Validate()
	require.Error(t, err)
	assert.Equal(t, "start_date", err.(*ValidationError).Field)

	term.StartDate = Date(2025, time.January, 6)
	err = term.Validate()
	require.Error(t, err)
	assert.Equal(t, "end_date", err.(*ValidationError).Field)
}

func TestTermStatus(t *testing.T) {
	term := termOfLength(90)

	before := term.StartDate.AddDate(0, 0, -1)
	assert.Equal(t, TermUpcoming, term.statusOn(before))

	// Both window bounds count as active.
	assert.Equal(t, TermActive, term.statusOn(term.StartDate.Time))
	assert.Equal(t, TermActive, term.statusOn(term.EndDate.Time))
	assert.Equal(t, TermActive, term.statusOn(term.StartDate.AddDate(0, 0, 45)))

	after := term.EndDate.AddDate(0, 0, 1)
	assert.Equal(t, TermEnded, term.statusOn(after))
}

func TestTermDaysRemaining(t *testing.T) {
	term := termOfLength(90)

	remaining := term.daysRemainingOn(term.EndDate.AddDate(0, 0, -10))
	require.NotNil(t, remaining)
	assert.Equal(t, 10, *remaining)

	// Not started yet: the count runs negative past the full length.
	remaining = term.daysRemainingOn(term.StartDate.AddDate(0, 0, -5))
	require.NotNil(t, remaining)
	assert.Equal(t, 95, *remaining)

	// Ended terms report nothing.
	assert.Nil(t, term.daysRemainingOn(term.EndDate.AddDate(0, 0, 1)))
}

func TestTermContains(t *testing.T) {
	term := termOfLength(90)

	assert.True(t, term.Contains(term.StartDate.Time))
	assert.True(t, term.Contains(term.EndDate.Time))
	assert.True(t, term.Contains(term.StartDate.AddDate(0, 0, 30)))
	assert.False(t, term.Contains(term.StartDate.AddDate(0, 0, -1)))
	assert.False(t, term.Contains(term.EndDate.AddDate(0, 0, 1)))
}

func TestTermDurationDays(t *testing.T) {
	assert.Equal(t, 90, termOfLength(90).DurationDays())
}
