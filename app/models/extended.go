package models

import "github.com/shopspring/decimal"

// DashboardStats summarizes the school for the admin dashboard.
type DashboardStats struct {
	TotalLearners     int    `json:"total_learners"`
	ActiveLearners    int    `json:"active_learners"`
	TotalClassLevels  int    `json:"total_class_levels"`
	TotalGuardians    int    `json:"total_guardians"`
	CurrentTerm       string `json:"current_term,omitempty"`
	CurrentTermStatus string `json:"current_term_status,omitempty"`
	// FeeScheduleCoverage counts (class level, term) pairs with a fee
	// row defined for the current term.
	FeeScheduleCoverage int `json:"fee_schedule_coverage"`
}

// LearnerTermFees is the fee breakdown for one learner in one term.
type LearnerTermFees struct {
	LearnerID      string          `json:"learner_id"`
	StudentID      string          `json:"student_id"`
	TermID         string          `json:"term_id"`
	ScheduleTotal   decimal.Decimal `json:"schedule_total"`
	OneTimeFees     decimal.Decimal `json:"one_time_fees"`
	Total           decimal.Decimal `json:"total"`
	IsAdmissionTerm bool            `json:"is_admission_term"`
}
