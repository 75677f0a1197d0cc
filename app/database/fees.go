package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// CreateClassTermFees inserts a fee row. The (class level, term) pair
// is checked at the validation layer first, then enforced again by the
// compound unique constraint.
func CreateClassTermFees(db *sql.DB, fees *models.ClassTermFees) error {
	if err := fees.Validate(); err != nil {
		return err
	}

	var count int
	dupQuery := `SELECT COUNT(*) FROM class_term_fees WHERE class_level_id = $1 AND academic_term_id = $2`
	if err := db.QueryRow(dupQuery, fees.ClassLevelID, fees.AcademicTermID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.NewValidationError("academic_term_id", "Fees for this class level and term are already defined.")
	}

	query := `INSERT INTO class_term_fees (class_level_id, academic_term_id, tuition_fee, meal_fee, activity_fee, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, fees.ClassLevelID, fees.AcademicTermID,
		fees.TuitionFee, fees.MealFee, fees.ActivityFee).
		Scan(&fees.ID, &fees.CreatedAt, &fees.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("academic_term_id", "Fees for this class level and term are already defined.")
		}
		return err
	}
	return nil
}

// UpdateClassTermFees persists fee amount edits.
func UpdateClassTermFees(db *sql.DB, fees *models.ClassTermFees) error {
	if err := fees.Validate(); err != nil {
		return err
	}

	query := `UPDATE class_term_fees
			  SET tuition_fee = $1, meal_fee = $2, activity_fee = $3, updated_at = NOW()
			  WHERE id = $4`

	result, err := db.Exec(query, fees.TuitionFee, fees.MealFee, fees.ActivityFee, fees.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetClassTermFees lists the fee table ordered by term start date then
// class progression order.
func GetClassTermFees(db *sql.DB) ([]*models.ClassTermFees, error) {
	query := `SELECT f.id, f.class_level_id, f.academic_term_id, f.tuition_fee, f.meal_fee, f.activity_fee,
			  f.created_at, f.updated_at,
			  cl.id, cl.name, cl.description, cl.class_order, cl.age_criteria, cl.admission_fee, cl.assessment_fee, cl.created_at, cl.updated_at,
			  t.id, t.name, t.start_date, t.end_date, t.year, t.created_at, t.updated_at
			  FROM class_term_fees f
			  JOIN class_levels cl ON f.class_level_id = cl.id
			  JOIN academic_terms t ON f.academic_term_id = t.id
			  ORDER BY t.start_date ASC, cl.class_order ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.ClassTermFees
	for rows.Next() {
		fees := &models.ClassTermFees{
			ClassLevel:   &models.ClassLevel{},
			AcademicTerm: &models.AcademicTerm{},
		}
		cl := fees.ClassLevel
		t := fees.AcademicTerm
		err := rows.Scan(&fees.ID, &fees.ClassLevelID, &fees.AcademicTermID,
			&fees.TuitionFee, &fees.MealFee, &fees.ActivityFee,
			&fees.CreatedAt, &fees.UpdatedAt,
			&cl.ID, &cl.Name, &cl.Description, &cl.ClassOrder, &cl.AgeCriteria,
			&cl.AdmissionFee, &cl.AssessmentFee, &cl.CreatedAt, &cl.UpdatedAt,
			&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Year, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, fees)
	}
	if list == nil {
		list = []*models.ClassTermFees{}
	}
	return list, rows.Err()
}

// GetClassTermFeesForPair returns the unique fee row for a
// (class level, term) pair, or nil when no schedule is defined.
// Callers must distinguish "no schedule" from "zero fees".
func GetClassTermFeesForPair(db *sql.DB, classLevelID, termID string) (*models.ClassTermFees, error) {
	fees := &models.ClassTermFees{}
	query := `SELECT id, class_level_id, academic_term_id, tuition_fee, meal_fee, activity_fee, created_at, updated_at
			  FROM class_term_fees WHERE class_level_id = $1 AND academic_term_id = $2`

	err := db.QueryRow(query, classLevelID, termID).Scan(&fees.ID, &fees.ClassLevelID,
		&fees.AcademicTermID, &fees.TuitionFee, &fees.MealFee, &fees.ActivityFee,
		&fees.CreatedAt, &fees.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fees, nil
}

func GetClassTermFeesByID(db *sql.DB, id string) (*models.ClassTermFees, error) {
	fees := &models.ClassTermFees{}
	query := `SELECT id, class_level_id, academic_term_id, tuition_fee, meal_fee, activity_fee, created_at, updated_at
			  FROM class_term_fees WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&fees.ID, &fees.ClassLevelID,
		&fees.AcademicTermID, &fees.TuitionFee, &fees.MealFee, &fees.ActivityFee,
		&fees.CreatedAt, &fees.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// DeleteClassTermFees removes a fee row.
func DeleteClassTermFees(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM class_term_fees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
