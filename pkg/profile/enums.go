package profile

// Gender of the profile subject.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Diet is the dietary preference of a profile.
type Diet string

const (
	DietVegetarian    Diet = "vegetarian"
	DietNonVegetarian Diet = "non_vegetarian"
	DietEggetarian    Diet = "eggetarian"
	DietVegan         Diet = "vegan"
	DietJain          Diet = "jain"
	DietHalal         Diet = "halal"
)

// Habit describes how often a profile smokes or drinks.
type Habit string

const (
	HabitNever        Habit = "never"
	HabitOccasionally Habit = "occasionally"
	HabitRegularly    Habit = "regularly"
)

// MaritalStatus values accepted in partner preferences.
type MaritalStatus string

const (
	MaritalNeverMarried MaritalStatus = "never_married"
	MaritalDivorced     MaritalStatus = "divorced"
	MaritalWidowed      MaritalStatus = "widowed"
	MaritalAnnulled     MaritalStatus = "annulled"
)

// EducationLevel is an ordered education attainment scale.
type EducationLevel string

const (
	EducationPrimary         EducationLevel = "primary"
	EducationSecondary       EducationLevel = "secondary"
	EducationHigherSecondary EducationLevel = "higher_secondary"
	EducationBachelors       EducationLevel = "bachelors"
	EducationMasters         EducationLevel = "masters"
	EducationPhD             EducationLevel = "phd"
)

// educationRanks orders levels for step-distance comparisons. Unknown levels
// rank below primary so they never inflate a gap.
var educationRanks = map[EducationLevel]int{
	EducationPrimary:         1,
	EducationSecondary:       2,
	EducationHigherSecondary: 3,
	EducationBachelors:       4,
	EducationMasters:         5,
	EducationPhD:             6,
}

// EducationRank returns the position of level on the ordered scale, or 0 for
// an unknown level.
func EducationRank(level EducationLevel) int {
	return educationRanks[level]
}

// EducationLevels returns the full scale in ascending order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{
		EducationPrimary,
		EducationSecondary,
		EducationHigherSecondary,
		EducationBachelors,
		EducationMasters,
		EducationPhD,
	}
}
