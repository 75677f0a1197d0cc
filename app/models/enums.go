package models

// ClassLevelName defines the class levels in the school's progression
// sequence. The order of ClassLevelChoices marks class progression.
type ClassLevelName string

const (
	Beginner ClassLevelName = "beginner"
	PP1      ClassLevelName = "pp1"
	PP2      ClassLevelName = "pp2"
	Grade1   ClassLevelName = "grade1"
	Grade2   ClassLevelName = "grade2"
)

// ClassLevelChoices lists the valid class levels in progression order
// with their display labels.
var ClassLevelChoices = []struct {
	Name  ClassLevelName
	Label string
}{
	{Beginner, "Beginner Class"},
	{PP1, "PP1"},
	{PP2, "PP2"},
	{Grade1, "Grade 1"},
	{Grade2, "Grade 2"},
}

// UnknownClassOrder is assigned to class levels whose name is not in
// ClassLevelChoices so they sort after all known levels.
const UnknownClassOrder = 999

// Order returns the 1-based position of a class level name in the
// progression sequence, or UnknownClassOrder if the name is not listed.
func (n ClassLevelName) Order() int {
	for i, choice := range ClassLevelChoices {
		if choice.Name == n {
			return i + 1
		}
	}
	return UnknownClassOrder
}

// Label returns the display label for the class level name, falling
// back to the raw name when it is not a listed choice.
func (n ClassLevelName) Label() string {
	for _, choice := range ClassLevelChoices {
		if choice.Name == n {
			return choice.Label
		}
	}
	return string(n)
}

// TermName defines the academic terms. Most schools operate on 3 terms
// per year.
type TermName string

const (
	Term1 TermName = "term1"
	Term2 TermName = "term2"
	Term3 TermName = "term3"
)

// TermChoices lists the valid term names with their display labels.
var TermChoices = []struct {
	Name  TermName
	Label string
}{
	{Term1, "Term 1"},
	{Term2, "Term 2"},
	{Term3, "Term 3"},
}

// Label returns the display label for the term name, falling back to
// the raw name when it is not a listed choice.
func (n TermName) Label() string {
	for _, choice := range TermChoices {
		if choice.Name == n {
			return choice.Label
		}
	}
	return string(n)
}

// TermStatus describes where a term sits relative to today.
type TermStatus string

const (
	TermUpcoming TermStatus = "upcoming"
	TermActive   TermStatus = "active"
	TermEnded    TermStatus = "ended"
)

// Gender defines the possible gender values for a learner.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// GuardianRelationship defines the relationship of a parent/guardian
// to a learner.
type GuardianRelationship string

const (
	Mother        GuardianRelationship = "mother"
	Father        GuardianRelationship = "father"
	LegalGuardian GuardianRelationship = "guardian"
	Grandparent   GuardianRelationship = "grandparent"
	OtherRelative GuardianRelationship = "other"
)

// GuardianRelationshipLabels maps relationship values to display labels.
var GuardianRelationshipLabels = map[GuardianRelationship]string{
	Mother:        "Mother",
	Father:        "Father",
	LegalGuardian: "Legal Guardian",
	Grandparent:   "Grandparent",
	OtherRelative: "Other Relative",
}

// Label returns the display label for the relationship, falling back
// to the raw value.
func (r GuardianRelationship) Label() string {
	if label, ok := GuardianRelationshipLabels[r]; ok {
		return label
	}
	return string(r)
}

// MealPlanType defines which program a meal plan belongs to.
type MealPlanType string

const (
	DaycarePlan MealPlanType = "daycare"
	SchoolPlan  MealPlanType = "school"
)

// MealPlanTypeLabels maps plan types to display labels.
var MealPlanTypeLabels = map[MealPlanType]string{
	DaycarePlan: "Daycare Meal Plan",
	SchoolPlan:  "School Meal Plan",
}

// Label returns the display label for the plan type, falling back to
// the raw value.
func (p MealPlanType) Label() string {
	if label, ok := MealPlanTypeLabels[p]; ok {
		return label
	}
	return string(p)
}

// DayOfWeek defines the days of the week covered by meal plans.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// DayLabels maps days to display labels.
var DayLabels = map[DayOfWeek]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Label returns the display label for the day, falling back to the raw
// value.
func (d DayOfWeek) Label() string {
	if label, ok := DayLabels[d]; ok {
		return label
	}
	return string(d)
}
