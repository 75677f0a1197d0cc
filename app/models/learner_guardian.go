package models

import (
	"fmt"
	"time"
)

// LearnerGuardian represents a parent or legal guardian of a learner.
// A learner may have several guardians; each is cascade-deleted with
// the learner.
type LearnerGuardian struct {
	ID           string               `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LearnerID    string               `json:"learner_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Relationship GuardianRelationship `json:"relationship" gorm:"not null" validate:"required,oneof=mother father guardian grandparent other"`
	FirstName    string               `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string               `json:"last_name" gorm:"not null" validate:"required"`
	PhoneNumber  string               `json:"phone_number" gorm:"type:varchar(15);not null" validate:"required"`
	Email        *string              `json:"email,omitempty" validate:"omitempty,email"`
	Occupation   *string              `json:"occupation,omitempty"`
	Workplace    *string              `json:"workplace,omitempty"`
	// NationalIDDocument holds the stored file path; the upload is
	// required for verification.
	NationalIDDocument string `json:"national_id_document" gorm:"not null"`
	// IsPrimaryContact and CanPickUpStudent are independent flags. No
	// at-most-one-primary rule is enforced across a learner's guardians.
	IsPrimaryContact bool      `json:"is_primary_contact" gorm:"default:false"`
	CanPickUpStudent bool      `json:"can_pick_up_student" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Learner          *Learner  `json:"learner,omitempty" gorm:"foreignKey:LearnerID;references:ID"`
}

// FullName returns the guardian's full name.
func (g *LearnerGuardian) FullName() string {
	return fmt.Sprintf("%s %s", g.FirstName, g.LastName)
}

// String renders the guardian for display, e.g.
// "Jane Doe (Mother of Amani)".
func (g *LearnerGuardian) String() string {
	learner := g.LearnerID
	if g.Learner != nil {
		learner = g.Learner.FirstName
	}
	return fmt.Sprintf("%s %s (%s of %s)", g.FirstName, g.LastName, g.Relationship.Label(), learner)
}
