package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// CreateClassLevel validates and inserts a class level. ClassOrder is
// recomputed before the write; a level reusing an already-taken name
// choice fails at the validation layer before the DB constraint fires.
func CreateClassLevel(db *sql.DB, level *models.ClassLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	level.ApplyOrder()

	taken, err := classLevelNameTaken(db, level.Name, "")
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("name", "A class level with this name already exists.")
	}

	query := `INSERT INTO class_levels (name, description, class_order, age_criteria, admission_fee, assessment_fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, level.Name, level.Description, level.ClassOrder,
		level.AgeCriteria, level.AdmissionFee, level.AssessmentFee).
		Scan(&level.ID, &level.CreatedAt, &level.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("name", "A class level with this name already exists.")
		}
		return err
	}
	return nil
}

// UpdateClassLevel persists edits to a class level. ClassOrder is
// recomputed on every save, even for unrelated field edits.
func UpdateClassLevel(db *sql.DB, level *models.ClassLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	level.ApplyOrder()

	taken, err := classLevelNameTaken(db, level.Name, level.ID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("name", "A class level with this name already exists.")
	}

	query := `UPDATE class_levels
			  SET name = $1, description = $2, class_order = $3, age_criteria = $4,
				  admission_fee = $5, assessment_fee = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query, level.Name, level.Description, level.ClassOrder,
		level.AgeCriteria, level.AdmissionFee, level.AssessmentFee, level.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("name", "A class level with this name already exists.")
		}
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// classLevelNameTaken checks the duplicate-choice rule ahead of the
// unique index so callers get a friendly message instead of a raw
// constraint error.
func classLevelNameTaken(db *sql.DB, name models.ClassLevelName, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM class_levels WHERE name = $1 AND id::text != $2`
	if err := db.QueryRow(query, name, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetClassLevels lists class levels in progression order, with
// alphabetical ties for unrecognized names in the sentinel bucket.
func GetClassLevels(db *sql.DB) ([]*models.ClassLevel, error) {
	query := `SELECT id, name, description, class_order, age_criteria, admission_fee, assessment_fee, created_at, updated_at
			  FROM class_levels ORDER BY class_order ASC, name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*models.ClassLevel
	for rows.Next() {
		level := &models.ClassLevel{}
		err := rows.Scan(&level.ID, &level.Name, &level.Description, &level.ClassOrder,
			&level.AgeCriteria, &level.AdmissionFee, &level.AssessmentFee,
			&level.CreatedAt, &level.UpdatedAt)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	if levels == nil {
		levels = []*models.ClassLevel{}
	}
	return levels, rows.Err()
}

func GetClassLevelByID(db *sql.DB, id string) (*models.ClassLevel, error) {
	level := &models.ClassLevel{}
	query := `SELECT id, name, description, class_order, age_criteria, admission_fee, assessment_fee, created_at, updated_at
			  FROM class_levels WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&level.ID, &level.Name, &level.Description,
		&level.ClassOrder, &level.AgeCriteria, &level.AdmissionFee, &level.AssessmentFee,
		&level.CreatedAt, &level.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return level, nil
}

// DeleteClassLevel removes a class level. Fee rows and learners
// referencing it are cascade-deleted by the schema.
func DeleteClassLevel(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM class_levels WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
