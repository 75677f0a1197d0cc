package models

import (
	"fmt"
	"time"
)

// Term duration bounds in days. Anything outside this window is almost
// certainly a data-entry mistake.
const (
	MinTermDays = 60
	MaxTermDays = 120
)

// AcademicTerm represents a term/quarter in the school year.
type AcademicTerm struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      TermName   `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate CustomDate `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate   CustomDate `json:"end_date" gorm:"not null;type:date" validate:"required"`
	Year      int        `json:"year" gorm:"not null" validate:"required,min=2000"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// Label returns the display name of the term, e.g. "Term 1 2025".
func (t *AcademicTerm) Label() string {
	return fmt.Sprintf("%s %d", t.Name.Label(), t.Year)
}

// Validate checks the term's date relationships. It must run on every
// write path; a failure rejects the whole write.
func (t *AcademicTerm) Validate() error {
	if t.StartDate.IsZero() {
		return NewValidationError("start_date", "Start date is required.")
	}
	if t.EndDate.IsZero() {
		return NewValidationError("end_date", "End date is required.")
	}
	if !t.EndDate.After(t.StartDate.Time) {
		return NewValidationError("end_date", "End date must be after the start date.")
	}

	duration := t.DurationDays()
	if duration < MinTermDays {
		return NewValidationError("end_date", "Term duration seems too short (less than 60 days). Please verify dates.")
	}
	if duration > MaxTermDays {
		return NewValidationError("end_date", "Term duration seems too long (more than 120 days). Please verify dates.")
	}
	return nil
}

// DurationDays returns the term length in whole days.
func (t *AcademicTerm) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate.Time).Hours() / 24)
}

// Status reports whether the term is upcoming, active or ended as of
// today.
func (t *AcademicTerm) Status() TermStatus {
	return t.statusOn(today())
}

func (t *AcademicTerm) statusOn(day time.Time) TermStatus {
	switch {
	case day.Before(t.StartDate.Time):
		return TermUpcoming
	case day.After(t.EndDate.Time):
		return TermEnded
	default:
		return TermActive
	}
}

// DaysRemaining returns the number of days left in the term, nil once
// the term has ended. A negative number means the term has not started
// yet; that is a signal, not an error.
func (t *AcademicTerm) DaysRemaining() *int {
	return t.daysRemainingOn(today())
}

func (t *AcademicTerm) daysRemainingOn(day time.Time) *int {
	if day.After(t.EndDate.Time) {
		return nil
	}
	remaining := int(t.EndDate.Sub(day).Hours() / 24)
	return &remaining
}

// IsActive reports whether the term is currently running.
func (t *AcademicTerm) IsActive() bool {
	return t.Status() == TermActive
}

// Contains reports whether the given date falls inside the term's
// window, inclusive on both ends.
func (t *AcademicTerm) Contains(day time.Time) bool {
	return !day.Before(t.StartDate.Time) && !day.After(t.EndDate.Time)
}

// today returns the current date truncated to midnight so that
// comparisons against date-only columns behave like calendar checks.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
