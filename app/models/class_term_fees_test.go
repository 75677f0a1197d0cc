package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalFeesExactSum(t *testing.T) {
	fees := &ClassTermFees{
		TuitionFee:  decimal.RequireFromString("1000.00"),
		MealFee:     decimal.RequireFromString("200.50"),
		ActivityFee: decimal.RequireFromString("0.00"),
	}
	assert.True(t, fees.TotalFees().Equal(decimal.RequireFromString("1200.50")),
		"got %s", fees.TotalFees())
}

func TestTotalFeesNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004.
	fees := &ClassTermFees{
		TuitionFee: decimal.RequireFromString("0.1"),
		MealFee:    decimal.RequireFromString("0.2"),
	}
	assert.Equal(t, "0.30", fees.TotalFees().StringFixed(2))
}

func TestClassTermFeesValidate(t *testing.T) {
	fees := &ClassTermFees{
		TuitionFee: decimal.NewFromInt(1000),
		MealFee:    decimal.NewFromInt(-1),
	}
	err := fees.Validate()
	require.Error(t, err)
	assert.Equal(t, "meal_fee", err.(*ValidationError).Field)

	fees.MealFee = decimal.Zero
	assert.NoError(t, fees.Validate())
}

func TestClassTermFeesString(t *testing.T) {
	fees := &ClassTermFees{
		TuitionFee:  decimal.RequireFromString("1500.00"),
		MealFee:     decimal.RequireFromString("300.00"),
		ActivityFee: decimal.RequireFromString("150.25"),
		ClassLevel:  &ClassLevel{Name: Grade1},
		AcademicTerm: &AcademicTerm{
			Name:      Term2,
			Year:      2025,
			StartDate: Date(2025, time.May, 5),
			EndDate:   Date(2025, time.August, 1),
		},
	}
	assert.Equal(t, "Grade 1 - Term 2 2025: KES 1950.25", fees.String())
}
