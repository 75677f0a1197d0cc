package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnerFullName(t *testing.T) {
	learner := &Learner{FirstName: "Amani", LastName: "Omondi"}
	assert.Equal(t, "Amani Omondi", learner.FullName())

	middle := "Kai"
	learner.MiddleName = &middle
	assert.Equal(t, "Amani Kai Omondi", learner.FullName())

	empty := ""
	learner.MiddleName = &empty
	assert.Equal(t, "Amani Omondi", learner.FullName())
}

func TestLearnerAgeAt(t *testing.T) {
	learner := &Learner{DateOfBirth: Date(2020, time.June, 15)}

	// Birthday not yet reached in the reference year.
	assert.Equal(t, 4, learner.AgeAt(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	// On the birthday itself.
	assert.Equal(t, 5, learner.AgeAt(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, learner.AgeAt(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestLearnerAgeByJuneFirst(t *testing.T) {
	// Born after June 1st: not yet 5 at the cutoff despite turning 5
	// that same month.
	learner := &Learner{DateOfBirth: Date(2020, time.June, 15)}
	assert.Equal(t, 4, learner.AgeByJuneFirst(2025))

	// Born before June 1st: counts the full year.
	learner = &Learner{DateOfBirth: Date(2020, time.May, 20)}
	assert.Equal(t, 5, learner.AgeByJuneFirst(2025))

	// Born exactly on June 1st.
	learner = &Learner{DateOfBirth: Date(2020, time.June, 1)}
	assert.Equal(t, 5, learner.AgeByJuneFirst(2025))
}

func TestMeetsAgeCriteria(t *testing.T) {
	criteria := 4
	learner := &Learner{
		DateOfBirth: Date(2020, time.March, 10),
		ClassLevel:  &ClassLevel{Name: PP1, AgeCriteria: &criteria},
	}
	assert.True(t, learner.MeetsAgeCriteria())

	strict := 99
	learner.ClassLevel.AgeCriteria = &strict
	assert.False(t, learner.MeetsAgeCriteria())

	// No criterion, or no level loaded, always passes.
	learner.ClassLevel.AgeCriteria = nil
	assert.True(t, learner.MeetsAgeCriteria())
	learner.ClassLevel = nil
	assert.True(t, learner.MeetsAgeCriteria())
}

func TestIsAdmissionTerm(t *testing.T) {
	term := &AcademicTerm{
		Name:      Term1,
		Year:      2025,
		StartDate: Date(2025, time.January, 6),
		EndDate:   Date(2025, time.April, 4),
	}

	// Inclusive on both bounds.
	assert.True(t, (&Learner{AdmissionDate: Date(2025, time.January, 6)}).IsAdmissionTerm(term))
	assert.True(t, (&Learner{AdmissionDate: Date(2025, time.April, 4)}).IsAdmissionTerm(term))
	assert.True(t, (&Learner{AdmissionDate: Date(2025, time.February, 14)}).IsAdmissionTerm(term))
	assert.False(t, (&Learner{AdmissionDate: Date(2025, time.January, 5)}).IsAdmissionTerm(term))
	assert.False(t, (&Learner{AdmissionDate: Date(2025, time.April, 5)}).IsAdmissionTerm(term))
}

func TestLearnerTermFees(t *testing.T) {
	level := &ClassLevel{
		Name:          Grade1,
		AdmissionFee:  decimal.RequireFromString("5000.00"),
		AssessmentFee: decimal.RequireFromString("1000.00"),
	}
	term := &AcademicTerm{
		Name:      Term1,
		Year:      2025,
		StartDate: Date(2025, time.January, 6),
		EndDate:   Date(2025, time.April, 4),
	}
	fees := &ClassTermFees{
		TuitionFee:  decimal.RequireFromString("15000.00"),
		MealFee:     decimal.RequireFromString("3000.00"),
		ActivityFee: decimal.RequireFromString("500.00"),
	}

	// Admitted during the term: one-time fees apply.
	newLearner := &Learner{
		ClassLevel:    level,
		AdmissionDate: Date(2025, time.February, 1),
	}
	total := newLearner.TermFees(fees, term)
	assert.True(t, total.Equal(decimal.RequireFromString("24500.00")), "got %s", total)

	// Admitted in a previous term: schedule total only.
	returning := &Learner{
		ClassLevel:    level,
		AdmissionDate: Date(2024, time.September, 2),
	}
	total = returning.TermFees(fees, term)
	assert.True(t, total.Equal(decimal.RequireFromString("18500.00")), "got %s", total)
}

func TestLearnerString(t *testing.T) {
	learner := &Learner{
		FirstName:  "Amani",
		LastName:   "Omondi",
		StudentID:  "25GRA001",
		ClassLevel: &ClassLevel{Name: Grade1},
	}
	assert.Equal(t, "Amani Omondi (Grade 1) - 25GRA001", learner.String())
}

func TestCustomDateJSON(t *testing.T) {
	d := Date(2025, time.June, 1)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(b))

	var parsed CustomDate
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"2025-06-01"`)))
	assert.True(t, parsed.Equal(d.Time))

	// Null leaves the zero value in place.
	var empty CustomDate
	require.NoError(t, empty.UnmarshalJSON([]byte(`null`)))
	assert.True(t, empty.IsZero())
}
