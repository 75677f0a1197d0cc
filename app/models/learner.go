package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Learner represents a student enrolled in the school.
type Learner struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassLevelID string     `json:"class_level_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FirstName    string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string     `json:"last_name" gorm:"not null" validate:"required"`
	MiddleName   *string    `json:"middle_name,omitempty"`
	DateOfBirth  CustomDate `json:"date_of_birth" gorm:"not null;type:date" validate:"required"`
	Gender       Gender     `json:"gender" gorm:"not null" validate:"required,oneof=male female"`
	// BirthCertificate holds the stored file path, when one was uploaded.
	BirthCertificate *string `json:"birth_certificate,omitempty"`
	// AdmissionDate is recorded once, when the learner is created.
	AdmissionDate CustomDate `json:"admission_date" gorm:"not null;type:date"`
	// StudentID is generated on first save when left blank and never
	// recomputed afterwards.
	StudentID string    `json:"student_id" gorm:"uniqueIndex;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	ClassLevel     *ClassLevel                   `json:"class_level,omitempty" gorm:"foreignKey:ClassLevelID;references:ID"`
	Guardians      []*LearnerGuardian            `json:"guardians,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
	MedicalInfo    *LearnerMedicalInfo           `json:"medical_info,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
	AdditionalInfo *LearnerAdditionalInformation `json:"additional_info,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
}

// FullName returns the learner's full name, including the middle name
// when present.
func (l *Learner) FullName() string {
	if l.MiddleName != nil && *l.MiddleName != "" {
		return fmt.Sprintf("%s %s %s", l.FirstName, *l.MiddleName, l.LastName)
	}
	return fmt.Sprintf("%s %s", l.FirstName, l.LastName)
}

// String renders the learner for display.
func (l *Learner) String() string {
	class := l.ClassLevelID
	if l.ClassLevel != nil {
		class = l.ClassLevel.Label()
	}
	return fmt.Sprintf("%s %s (%s) - %s", l.FirstName, l.LastName, class, l.StudentID)
}

// AgeAt calculates the learner's age in whole years as of a specific
// date, using the calendar algorithm: subtract birth year, minus one if
// the birthday has not yet occurred in the reference year.
func (l *Learner) AgeAt(asOf time.Time) int {
	age := asOf.Year() - l.DateOfBirth.Year()
	if asOf.Month() < l.DateOfBirth.Month() ||
		(asOf.Month() == l.DateOfBirth.Month() && asOf.Day() < l.DateOfBirth.Day()) {
		age--
	}
	return age
}

// Age returns the learner's current age.
func (l *Learner) Age() int {
	return l.AgeAt(today())
}

// AgeByJuneFirst returns the learner's age as of June 1st of the given
// year, or of the current year when year is zero. Age criteria are
// evaluated against this date.
func (l *Learner) AgeByJuneFirst(year int) int {
	if year == 0 {
		year = today().Year()
	}
	return l.AgeAt(time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC))
}

// MeetsAgeCriteria reports whether the learner satisfies the minimum
// age requirement of their class level. Levels without a criterion
// always pass. The class level must be loaded.
func (l *Learner) MeetsAgeCriteria() bool {
	if l.ClassLevel == nil || l.ClassLevel.AgeCriteria == nil {
		return true
	}
	return l.AgeByJuneFirst(0) >= *l.ClassLevel.AgeCriteria
}

// IsAdmissionTerm reports whether the learner was first admitted during
// the given term. Both window bounds are inclusive.
func (l *Learner) IsAdmissionTerm(term *AcademicTerm) bool {
	return term.Contains(l.AdmissionDate.Time)
}

// TermFees combines a fee schedule row with the learner's one-time
// charges: the class level's admission and assessment fees are added
// exactly once, only for the term the learner was admitted in. The
// class level must be loaded and the schedule row must belong to it.
func (l *Learner) TermFees(fees *ClassTermFees, term *AcademicTerm) decimal.Decimal {
	total := fees.TotalFees()
	if l.IsAdmissionTerm(term) && l.ClassLevel != nil {
		total = total.Add(l.ClassLevel.AdmissionFee).Add(l.ClassLevel.AssessmentFee)
	}
	return total
}
