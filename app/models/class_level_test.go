package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassLevelNameOrder(t *testing.T) {
	assert.Equal(t, 1, Beginner.Order())
	assert.Equal(t, 2, PP1.Order())
	assert.Equal(t, 3, PP2.Order())
	assert.Equal(t, 4, Grade1.Order())
	assert.Equal(t, 5, Grade2.Order())
}

func TestClassLevelNameOrderUnknown(t *testing.T) {
	assert.Equal(t, UnknownClassOrder, ClassLevelName("grade9").Order())
	assert.Equal(t, UnknownClassOrder, ClassLevelName("").Order())
}

func TestClassLevelApplyOrder(t *testing.T) {
	level := &ClassLevel{Name: Grade1, ClassOrder: 1}
	level.ApplyOrder()
	assert.Equal(t, 4, level.ClassOrder)

	// Renaming to an unlisted level pushes it to the end of any sort.
	level.Name = "nursery"
	level.ApplyOrder()
	assert.Equal(t, UnknownClassOrder, level.ClassOrder)
}

func TestClassLevelLabel(t *testing.T) {
	assert.Equal(t, "Beginner Class", (&ClassLevel{Name: Beginner}).Label())
	assert.Equal(t, "PP1", (&ClassLevel{Name: PP1}).Label())
	assert.Equal(t, "Grade 2", (&ClassLevel{Name: Grade2}).Label())
	// Unlisted names fall back to the raw value.
	assert.Equal(t, "nursery", (&ClassLevel{Name: "nursery"}).Label())
}

func TestClassCode(t *testing.T) {
	assert.Equal(t, "BEG", (&ClassLevel{Name: Beginner}).ClassCode())
	assert.Equal(t, "PP1", (&ClassLevel{Name: PP1}).ClassCode())
	assert.Equal(t, "GRA", (&ClassLevel{Name: Grade1}).ClassCode())
	assert.Equal(t, "STU", (&ClassLevel{Name: ""}).ClassCode())
	// Codes shorter than three characters are used as-is.
	assert.Equal(t, "AB", (&ClassLevel{Name: "ab"}).ClassCode())
}

func TestClassLevelValidateRejectsNegativeFees(t *testing.T) {
	level := &ClassLevel{
		Name:         Grade1,
		AdmissionFee: decimal.NewFromInt(-100),
	}
	err := level.Validate()
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "admission_fee", vErr.Field)

	level.AdmissionFee = decimal.NewFromInt(5000)
	level.AssessmentFee = decimal.NewFromInt(-1)
	err = level.Validate()
	assert.Error(t, err)
	vErr, ok = err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "assessment_fee", vErr.Field)

	level.AssessmentFee = decimal.Zero
	assert.NoError(t, level.Validate())
}
