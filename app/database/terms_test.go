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

func validTerm() *models.AcademicTerm {
	return &models.AcademicTerm{
		Name:      models.Term1,
		Year:      2025,
		StartDate: models.Date(2025, time.January, 6),
		EndDate:   models.Date(2025, time.April, 4),
	}
}

func TestCreateAcademicTermRejectsBadDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	term := validTerm()
	term.EndDate = models.Date(2025, time.February, 1) // 26 days

	err = CreateAcademicTerm(db, term)
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "end_date", vErr.Field)
	// No SQL runs when validation fails.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAcademicTermDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM academic_terms WHERE name = $1 AND id::text != $2`)).
		WithArgs(models.Term1, "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err = CreateAcademicTerm(db, validTerm())
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", vErr.Field)
	assert.Equal(t, "An academic term with this name already exists.", vErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAcademicTermRevalidates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	term := validTerm()
	term.ID = "33333333-3333-3333-3333-333333333333"
	term.EndDate = models.Date(2025, time.December, 31) // far past 120 days

	err = UpdateAcademicTerm(db, term)
	require.Error(t, err)
	assert.Equal(t, "end_date", err.(*models.ValidationError).Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveTermNone(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, start_date, end_date, year").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	term, err := GetActiveTerm(db)
	require.NoError(t, err)
	assert.Nil(t, term)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveTermFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, start_date, end_date, year").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "start_date", "end_date",
			"year", "created_at", "updated_at"}).
			AddRow("33333333-3333-3333-3333-333333333333", "term1",
				time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC), 2025, now, now))

	term, err := GetActiveTerm(db)
	require.NoError(t, err)
	require.NotNil(t, term)
	assert.Equal(t, "Term 1 2025", term.Label())
	assert.NoError(t, mock.ExpectationsWereMet())
}
