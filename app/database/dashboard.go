package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// GetDashboardStats collects the headline numbers for the admin
// dashboard.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM learners`).
		Scan(&stats.TotalLearners, &stats.ActiveLearners)
	if err != nil {
		return nil, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM class_levels`).Scan(&stats.TotalClassLevels); err != nil {
		return nil, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM learner_guardians`).Scan(&stats.TotalGuardians); err != nil {
		return nil, err
	}

	term, err := GetActiveTerm(db)
	if err != nil {
		return nil, err
	}
	if term != nil {
		stats.CurrentTerm = term.Label()
		stats.CurrentTermStatus = string(term.Status())

		coverageQuery := `SELECT COUNT(*) FROM class_term_fees WHERE academic_term_id = $1`
		if err := db.QueryRow(coverageQuery, term.ID).Scan(&stats.FeeScheduleCoverage); err != nil {
			return nil, err
		}
	}

	return stats, nil
}
