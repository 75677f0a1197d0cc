package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// CreateAcademicTerm validates and inserts a term. Validation runs on
// this write path unconditionally; a failing term is never persisted.
func CreateAcademicTerm(db *sql.DB, term *models.AcademicTerm) error {
	if err := term.Validate(); err != nil {
		return err
	}

	taken, err := termNameTaken(db, term.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("name", "An academic term with this name already exists.")
	}

	query := `INSERT INTO academic_terms (name, start_date, end_date, year, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, term.Name, term.StartDate, term.EndDate, term.Year).
		Scan(&term.ID, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("name", "An academic term with this name already exists.")
		}
		return err
	}
	return nil
}

// UpdateAcademicTerm persists edits to a term, re-running date
// validation first.
func UpdateAcademicTerm(db *sql.DB, term *models.AcademicTerm) error {
	if err := term.Validate(); err != nil {
		return err
	}

	taken, err := termNameTaken(db, term.Name, term.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("name", "An academic term with this name already exists.")
	}

	query := `UPDATE academic_terms
			  SET name = $1, start_date = $2, end_date = $3, year = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query, term.Name, term.StartDate, term.EndDate, term.Year, term.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("name", "An academic term with this name already exists.")
		}
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func termNameTaken(db *sql.DB, name models.TermName, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM academic_terms WHERE name = $1 AND id::text != $2`
	if err := db.QueryRow(query, name, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAcademicTerms lists terms by start date.
func GetAcademicTerms(db *sql.DB) ([]*models.AcademicTerm, error) {
	query := `SELECT id, name, start_date, end_date, year, created_at, updated_at
			  FROM academic_terms ORDER BY start_date ASC, name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.AcademicTerm
	for rows.Next() {
		term := &models.AcademicTerm{}
		err := rows.Scan(&term.ID, &term.Name, &term.StartDate, &term.EndDate,
			&term.Year, &term.CreatedAt, &term.UpdatedAt)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if terms == nil {
		terms = []*models.AcademicTerm{}
	}
	return terms, rows.Err()
}

func GetAcademicTermByID(db *sql.DB, id string) (*models.AcademicTerm, error) {
	term := &models.AcademicTerm{}
	query := `SELECT id, name, start_date, end_date, year, created_at, updated_at
			  FROM academic_terms WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&term.ID, &term.Name, &term.StartDate,
		&term.EndDate, &term.Year, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return term, nil
}

// GetActiveTerm returns the term whose window contains today, or nil
// when no term is running.
func GetActiveTerm(db *sql.DB) (*models.AcademicTerm, error) {
	term := &models.AcademicTerm{}
	query := `SELECT id, name, start_date, end_date, year, created_at, updated_at
			  FROM academic_terms
			  WHERE start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE
			  ORDER BY start_date ASC LIMIT 1`

	err := db.QueryRow(query).Scan(&term.ID, &term.Name, &term.StartDate,
		&term.EndDate, &term.Year, &term.CreatedAt, &term.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return term, nil
}

// DeleteAcademicTerm removes a term; its fee rows cascade.
func DeleteAcademicTerm(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM academic_terms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
