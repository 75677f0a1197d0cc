package database

import (
	"regexp"
	"testing"
	"time"

	"spark-playhouse/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentIDPrefix(t *testing.T) {
	level := &models.ClassLevel{Name: models.Grade1}
	admission := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "25GRA", studentIDPrefix(level, admission))

	level = &models.ClassLevel{Name: models.PP1}
	assert.Equal(t, "25PP1", studentIDPrefix(level, admission))

	// Unset admission falls back to the current year.
	want := time.Now().Year() % 100
	prefix := studentIDPrefix(level, time.Time{})
	assert.Equal(t, "PP1", prefix[2:])
	assert.Len(t, prefix, 5)
	assert.Equal(t, want, int(prefix[0]-'0')*10+int(prefix[1]-'0'))
}

func TestGenerateStudentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM learners WHERE student_id LIKE $1`)).
		WithArgs("25GRA%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := GenerateStudentID(tx, "25GRA")
	require.NoError(t, err)
	assert.Equal(t, "25GRA008", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateStudentIDFirstOfPrefix(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM learners WHERE student_id LIKE $1`)).
		WithArgs("25BEG%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	tx, err := db.Begin()
	require.NoError(t, err)

	id, err := GenerateStudentID(tx, "25BEG")
	require.NoError(t, err)
	assert.Equal(t, "25BEG001", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLearnerGeneratesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	levelID := "11111111-1111-1111-1111-111111111111"
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, class_order, age_criteria, admission_fee, assessment_fee, created_at, updated_at
			  FROM class_levels WHERE id = $1`)).
		WithArgs(levelID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "class_order", "age_criteria",
			"admission_fee", "assessment_fee", "created_at", "updated_at"}).
			AddRow(levelID, "grade1", "", 4, nil, "5000.00", "1000.00", now, now))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1))`)).
		WithArgs("25GRA").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM learners WHERE student_id LIKE $1`)).
		WithArgs("25GRA%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("INSERT INTO learners").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("22222222-2222-2222-2222-222222222222", now, now))
	mock.ExpectCommit()

	learner := &models.Learner{
		ClassLevelID:  levelID,
		FirstName:     "Amani",
		LastName:      "Omondi",
		DateOfBirth:   models.Date(2020, time.June, 15),
		Gender:        models.Female,
		AdmissionDate: models.Date(2025, time.February, 3),
		IsActive:      true,
	}

	require.NoError(t, CreateLearner(db, learner))
	assert.Equal(t, "25GRA013", learner.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLearnerKeepsSuppliedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	levelID := "11111111-1111-1111-1111-111111111111"
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, description, class_order, age_criteria, admission_fee, assessment_fee, created_at, updated_at
			  FROM class_levels WHERE id = $1`)).
		WithArgs(levelID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "class_order", "age_criteria",
			"admission_fee", "assessment_fee", "created_at", "updated_at"}).
			AddRow(levelID, "grade1", "", 4, nil, "5000.00", "1000.00", now, now))

	// No lock, no count: the supplied ID is kept as-is.
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO learners").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("22222222-2222-2222-2222-222222222222", now, now))
	mock.ExpectCommit()

	learner := &models.Learner{
		ClassLevelID:  levelID,
		FirstName:     "Amani",
		LastName:      "Omondi",
		DateOfBirth:   models.Date(2020, time.June, 15),
		Gender:        models.Female,
		AdmissionDate: models.Date(2025, time.February, 3),
		StudentID:     "25GRA099",
	}

	require.NoError(t, CreateLearner(db, learner))
	assert.Equal(t, "25GRA099", learner.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLearnerTermFeesNoSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, class_level_id, academic_term_id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	learner := &models.Learner{
		ID:           "22222222-2222-2222-2222-222222222222",
		ClassLevelID: "11111111-1111-1111-1111-111111111111",
	}
	term := &models.AcademicTerm{ID: "33333333-3333-3333-3333-333333333333"}

	breakdown, err := GetLearnerTermFees(db, learner, term)
	require.NoError(t, err)
	// Absent schedule means no answer, not a zero total.
	assert.Nil(t, breakdown)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLearnerTermFeesAdmissionTerm(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, class_level_id, academic_term_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_level_id", "academic_term_id",
			"tuition_fee", "meal_fee", "activity_fee", "created_at", "updated_at"}).
			AddRow("44444444-4444-4444-4444-444444444444", "11111111-1111-1111-1111-111111111111",
				"33333333-3333-3333-3333-333333333333", "15000.00", "3000.00", "500.00", now, now))

	learner := &models.Learner{
		ID:            "22222222-2222-2222-2222-222222222222",
		ClassLevelID:  "11111111-1111-1111-1111-111111111111",
		StudentID:     "25GRA001",
		AdmissionDate: models.Date(2025, time.February, 1),
		ClassLevel: &models.ClassLevel{
			Name:          models.Grade1,
			AdmissionFee:  decimal.RequireFromString("5000.00"),
			AssessmentFee: decimal.RequireFromString("1000.00"),
		},
	}
	term := &models.AcademicTerm{
		ID:        "33333333-3333-3333-3333-333333333333",
		Name:      models.Term1,
		Year:      2025,
		StartDate: models.Date(2025, time.January, 6),
		EndDate:   models.Date(2025, time.April, 4),
	}

	breakdown, err := GetLearnerTermFees(db, learner, term)
	require.NoError(t, err)
	require.NotNil(t, breakdown)
	assert.True(t, breakdown.IsAdmissionTerm)
	assert.Equal(t, "18500.00", breakdown.ScheduleTotal.StringFixed(2))
	assert.Equal(t, "6000.00", breakdown.OneTimeFees.StringFixed(2))
	assert.Equal(t, "24500.00", breakdown.Total.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
