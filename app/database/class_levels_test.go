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

func TestCreateClassLevelDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM class_levels WHERE name = $1 AND id::text != $2`)).
		WithArgs(models.Grade1, "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	level := &models.ClassLevel{Name: models.Grade1}
	err = CreateClassLevel(db, level)
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", vErr.Field)
	assert.Equal(t, "A class level with this name already exists.", vErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClassLevelAppliesOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM class_levels WHERE name = $1 AND id::text != $2`)).
		WithArgs(models.PP2, "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO class_levels").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("11111111-1111-1111-1111-111111111111", now, now))

	level := &models.ClassLevel{
		Name:          models.PP2,
		ClassOrder:    42, // stale value, recomputed on save
		AdmissionFee:  decimal.NewFromInt(5000),
		AssessmentFee: decimal.NewFromInt(1000),
	}

	require.NoError(t, CreateClassLevel(db, level))
	assert.Equal(t, 3, level.ClassOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClassLevelUnknownNameGetsSentinelOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM class_levels WHERE name = $1 AND id::text != $2`)).
		WithArgs(models.ClassLevelName("nursery"), "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("INSERT INTO class_levels").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("11111111-1111-1111-1111-111111111111", now, now))

	level := &models.ClassLevel{Name: "nursery"}
	require.NoError(t, CreateClassLevel(db, level))
	assert.Equal(t, models.UnknownClassOrder, level.ClassOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}
