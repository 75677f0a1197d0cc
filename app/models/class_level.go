package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassLevel represents a class level in the school system, from the
// beginner class through the primary grades.
type ClassLevel struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        ClassLevelName `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description string         `json:"description" gorm:"type:text"`
	// ClassOrder is recomputed from ClassLevelChoices on every save; it
	// reflects the progression position at the time of the last write.
	ClassOrder    int             `json:"class_order" gorm:"not null"`
	AgeCriteria   *int            `json:"age_criteria,omitempty" validate:"omitempty,min=0"`
	AdmissionFee  decimal.Decimal `json:"admission_fee" gorm:"type:numeric(10,2);not null"`
	AssessmentFee decimal.Decimal `json:"assessment_fee" gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Label returns the display label for this class level.
func (cl *ClassLevel) Label() string {
	return cl.Name.Label()
}

// ApplyOrder recomputes ClassOrder from the class level's position in
// the progression sequence. Runs on every save, even when only
// unrelated fields changed.
func (cl *ClassLevel) ApplyOrder() {
	cl.ClassOrder = cl.Name.Order()
}

// ClassCode returns the 3-letter uppercase code used in learner IDs,
// taken from the raw enumeration key rather than the display label.
func (cl *ClassLevel) ClassCode() string {
	name := string(cl.Name)
	if len(name) >= 3 {
		name = name[:3]
	}
	if name == "" {
		return "STU"
	}
	code := []byte(name)
	for i, b := range code {
		if b >= 'a' && b <= 'z' {
			code[i] = b - 'a' + 'A'
		}
	}
	return string(code)
}

// Validate checks the class level's fees for negative amounts.
func (cl *ClassLevel) Validate() error {
	if cl.AdmissionFee.IsNegative() {
		return NewValidationError("admission_fee", "Admission fee cannot be negative.")
	}
	if cl.AssessmentFee.IsNegative() {
		return NewValidationError("assessment_fee", "Assessment fee cannot be negative.")
	}
	return nil
}
