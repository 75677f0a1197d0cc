package models

import (
	"fmt"
	"time"
)

// MealPlan defines the meal schedule for one day of a program's week.
// At most one row may exist per (plan_type, day) pair.
type MealPlan struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	PlanType     MealPlanType `json:"plan_type" gorm:"not null;uniqueIndex:idx_plan_day" validate:"required,oneof=daycare school"`
	Day          DayOfWeek    `json:"day" gorm:"not null;uniqueIndex:idx_plan_day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	MorningSnack string       `json:"morning_snack" gorm:"type:varchar(200);not null" validate:"required"`
	Lunch        string       `json:"lunch" gorm:"type:varchar(200);not null" validate:"required"`
	EveningSnack string       `json:"evening_snack" gorm:"type:varchar(200);not null" validate:"required"`
	SpecialNotes string       `json:"special_notes" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// String renders the plan slot for display, e.g.
// "Daycare Meal Plan - Monday".
func (mp *MealPlan) String() string {
	return fmt.Sprintf("%s - %s", mp.PlanType.Label(), mp.Day.Label())
}
