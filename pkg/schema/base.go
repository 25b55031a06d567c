package schema

// Religions accepted by the base schema. Regional fragments never narrow
// this list; religion-conditional rules live in the regional checker.
var Religions = []string{
	"hindu", "muslim", "christian", "sikh", "jain", "buddhist", "parsi", "jewish", "other",
}

// Diets accepted by the base schema.
var Diets = []string{
	"vegetarian", "non_vegetarian", "eggetarian", "vegan", "jain", "halal",
}

// Habits accepted for smoking and drinking frequency.
var Habits = []string{"never", "occasionally", "regularly"}

// ManglikStatuses accepted for the manglik field.
var ManglikStatuses = []string{"yes", "no", "partial", "unknown"}

// baseSchema is the region-neutral constraint set. Regional fragments
// override entries by name or append new ones via Compose.
var baseSchema = Schema{
	{Name: "personal.name", Label: "Full name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 100},
	{Name: "personal.age", Label: "Age", Kind: KindInt, Required: true, Min: NumPtr(18), Max: NumPtr(100)},
	{Name: "personal.gender", Label: "Gender", Kind: KindEnum, Required: true, OneOf: []string{"male", "female", "other"}},
	{Name: "personal.date_of_birth", Label: "Date of birth", Kind: KindDate, Required: true},
	{Name: "personal.height", Label: "Height", Kind: KindFloat, Min: NumPtr(50), Max: NumPtr(250)},
	{Name: "personal.height_unit", Label: "Height unit", Kind: KindEnum, OneOf: []string{"cm", "feet_inches"}},
	{Name: "personal.weight", Label: "Weight", Kind: KindFloat, Min: NumPtr(30), Max: NumPtr(200)},
	{Name: "personal.religion", Label: "Religion", Kind: KindEnum, Required: true, OneOf: Religions},
	{Name: "personal.mother_tongue", Label: "Mother tongue", Kind: KindString, Required: true, MaxLen: 50},
	{Name: "contact.email", Label: "Email", Kind: KindEmail, Required: true, MaxLen: 254},
	{Name: "contact.phone", Label: "Phone", Kind: KindPhone, Required: true, Min: NumPtr(7), Max: NumPtr(15)},
	{Name: "contact.city", Label: "City", Kind: KindString, Required: true, MaxLen: 100},
	{Name: "contact.country", Label: "Country", Kind: KindString, Required: true, MaxLen: 100},
	{Name: "contact.postal_code", Label: "Postal code", Kind: KindString, MaxLen: 12},
	{Name: "family.brothers", Label: "Brothers", Kind: KindInt, Min: NumPtr(0), Max: NumPtr(20)},
	{Name: "family.sisters", Label: "Sisters", Kind: KindInt, Min: NumPtr(0), Max: NumPtr(20)},
	{Name: "lifestyle.diet", Label: "Diet", Kind: KindEnum, Required: true, OneOf: Diets},
	{Name: "lifestyle.smoking", Label: "Smoking", Kind: KindEnum, Required: true, OneOf: Habits},
	{Name: "lifestyle.drinking", Label: "Drinking", Kind: KindEnum, Required: true, OneOf: Habits},
	{Name: "horoscope.manglik", Label: "Manglik status", Kind: KindEnum, OneOf: ManglikStatuses},
}

// Base returns a fresh copy of the region-neutral schema.
func Base() Schema {
	return baseSchema.Clone()
}
