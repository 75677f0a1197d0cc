package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// CreateMealPlan inserts a meal plan slot. The (plan type, day) pair is
// checked at the validation layer first, then enforced by the compound
// unique constraint.
func CreateMealPlan(db *sql.DB, plan *models.MealPlan) error {
	var count int
	dupQuery := `SELECT COUNT(*) FROM meal_plans WHERE plan_type = $1 AND day = $2`
	if err := db.QueryRow(dupQuery, plan.PlanType, plan.Day).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.NewValidationError("day", "A meal plan for this program and day already exists.")
	}

	query := `INSERT INTO meal_plans (plan_type, day, morning_snack, lunch, evening_snack, special_notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, plan.PlanType, plan.Day, plan.MorningSnack, plan.Lunch,
		plan.EveningSnack, plan.SpecialNotes).
		Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("day", "A meal plan for this program and day already exists.")
		}
		return err
	}
	return nil
}

// UpdateMealPlan persists edits to a meal plan slot.
func UpdateMealPlan(db *sql.DB, plan *models.MealPlan) error {
	query := `UPDATE meal_plans
			  SET morning_snack = $1, lunch = $2, evening_snack = $3, special_notes = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query, plan.MorningSnack, plan.Lunch, plan.EveningSnack,
		plan.SpecialNotes, plan.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetMealPlans lists meal plans grouped by program then day.
func GetMealPlans(db *sql.DB) ([]*models.MealPlan, error) {
	query := `SELECT id, plan_type, day, morning_snack, lunch, evening_snack, special_notes, created_at, updated_at
			  FROM meal_plans ORDER BY plan_type ASC, day ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*models.MealPlan
	for rows.Next() {
		plan := &models.MealPlan{}
		err := rows.Scan(&plan.ID, &plan.PlanType, &plan.Day, &plan.MorningSnack,
			&plan.Lunch, &plan.EveningSnack, &plan.SpecialNotes,
			&plan.CreatedAt, &plan.UpdatedAt)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if plans == nil {
		plans = []*models.MealPlan{}
	}
	return plans, rows.Err()
}

func GetMealPlanByID(db *sql.DB, id string) (*models.MealPlan, error) {
	plan := &models.MealPlan{}
	query := `SELECT id, plan_type, day, morning_snack, lunch, evening_snack, special_notes, created_at, updated_at
			  FROM meal_plans WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&plan.ID, &plan.PlanType, &plan.Day,
		&plan.MorningSnack, &plan.Lunch, &plan.EveningSnack, &plan.SpecialNotes,
		&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteMealPlan removes a meal plan slot.
func DeleteMealPlan(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM meal_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
