package database

import (
	"regexp"
	"testing"
	"time"

	"spark-playhouse/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMealPlanDuplicateSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM meal_plans WHERE plan_type = $1 AND day = $2`)).
		WithArgs(models.DaycarePlan, models.Monday).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	plan := &models.MealPlan{
		PlanType:     models.DaycarePlan,
		Day:          models.Monday,
		MorningSnack: "Fruit salad",
		Lunch:        "Rice and beans",
		EveningSnack: "Milk and biscuits",
	}

	err = CreateMealPlan(db, plan)
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "day", vErr.Field)
	assert.Equal(t, "A meal plan for this program and day already exists.", vErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMealPlanNewSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM meal_plans WHERE plan_type = $1 AND day = $2`)).
		WithArgs(models.SchoolPlan, models.Friday).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	now := time.Now()
	mock.ExpectQuery("INSERT INTO meal_plans").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("55555555-5555-5555-5555-555555555555", now, now))

	plan := &models.MealPlan{
		PlanType:     models.SchoolPlan,
		Day:          models.Friday,
		MorningSnack: "Porridge",
		Lunch:        "Ugali and greens",
		EveningSnack: "Fruit",
	}

	require.NoError(t, CreateMealPlan(db, plan))
	assert.Equal(t, "55555555-5555-5555-5555-555555555555", plan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
