package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClassTermFees defines the fee structure for a class level during a
// specific academic term. At most one row may exist per
// (class_level, academic_term) pair.
type ClassTermFees struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassLevelID   string          `json:"class_level_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_class_term" validate:"required,uuid"`
	AcademicTermID string          `json:"academic_term_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_class_term" validate:"required,uuid"`
	TuitionFee     decimal.Decimal `json:"tuition_fee" gorm:"type:numeric(10,2);not null"`
	MealFee        decimal.Decimal `json:"meal_fee" gorm:"type:numeric(10,2);not null;default:0"`
	ActivityFee    decimal.Decimal `json:"activity_fee" gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	ClassLevel     *ClassLevel     `json:"class_level,omitempty" gorm:"foreignKey:ClassLevelID;references:ID"`
	AcademicTerm   *AcademicTerm   `json:"academic_term,omitempty" gorm:"foreignKey:AcademicTermID;references:ID"`
}

// TotalFees returns tuition + meal + activity as an exact decimal sum.
func (f *ClassTermFees) TotalFees() decimal.Decimal {
	return f.TuitionFee.Add(f.MealFee).Add(f.ActivityFee)
}

// Validate rejects negative fee amounts.
func (f *ClassTermFees) Validate() error {
	if f.TuitionFee.IsNegative() {
		return NewValidationError("tuition_fee", "Tuition fee cannot be negative.")
	}
	if f.MealFee.IsNegative() {
		return NewValidationError("meal_fee", "Meal fee cannot be negative.")
	}
	if f.ActivityFee.IsNegative() {
		return NewValidationError("activity_fee", "Activity fee cannot be negative.")
	}
	return nil
}

// String renders the fee row for display, e.g.
// "Grade 1 - Term 2 2025: KES 1200.50".
func (f *ClassTermFees) String() string {
	class := f.ClassLevelID
	if f.ClassLevel != nil {
		class = f.ClassLevel.Label()
	}
	term := f.AcademicTermID
	if f.AcademicTerm != nil {
		term = f.AcademicTerm.Label()
	}
	return fmt.Sprintf("%s - %s: KES %s", class, term, f.TotalFees().StringFixed(2))
}
