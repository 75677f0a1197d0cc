package models

import (
	"fmt"
	"time"
)

// LearnerMedicalInfo stores medical information and emergency contacts
// for a learner. One record per learner, cascade-deleted with it.
type LearnerMedicalInfo struct {
	ID                        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LearnerID                 string    `json:"learner_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	Allergies                 string    `json:"allergies" gorm:"type:text"`
	Medications               string    `json:"medications" gorm:"type:text"`
	MedicalConditions         string    `json:"medical_conditions" gorm:"type:text"`
	DietaryRestrictions       string    `json:"dietary_restrictions" gorm:"type:text"`
	MedicalFacility           string    `json:"medical_facility" gorm:"type:varchar(200)"`
	EmergencyContactName      string    `json:"emergency_contact_name" gorm:"not null" validate:"required"`
	EmergencyContactPhone     string    `json:"emergency_contact_phone" gorm:"type:varchar(15);not null" validate:"required"`
	SecondaryEmergencyContact string    `json:"secondary_emergency_contact" gorm:"type:varchar(100)"`
	SecondaryEmergencyPhone   string    `json:"secondary_emergency_phone" gorm:"type:varchar(15)"`
	CreatedAt                 time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                 time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Learner                   *Learner  `json:"learner,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
}

// String renders the record for display.
func (m *LearnerMedicalInfo) String() string {
	learner := m.LearnerID
	if m.Learner != nil {
		learner = m.Learner.FullName()
	}
	return fmt.Sprintf("Medical Info - %s", learner)
}

// LearnerAdditionalInformation captures enrollment feedback and special
// accommodation notes. One record per learner, cascade-deleted with it.
type LearnerAdditionalInformation struct {
	ID                    string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LearnerID             string    `json:"learner_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	ReferralSource        string    `json:"referral_source" gorm:"type:text"`
	PreviousSchool        string    `json:"previous_school" gorm:"type:varchar(200)"`
	SpecialNeeds          string    `json:"special_needs" gorm:"type:text"`
	AdditionalInformation string    `json:"additional_information" gorm:"type:text"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Learner               *Learner  `json:"learner,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
}

// String renders the record for display.
func (a *LearnerAdditionalInformation) String() string {
	learner := a.LearnerID
	if a.Learner != nil {
		learner = a.Learner.FullName()
	}
	return fmt.Sprintf("Additional Info - %s", learner)
}
