package profile

import "github.com/google/uuid"

// Profile is the full biodata aggregate. It is constructed by the caller and
// never mutated by this module.
type Profile struct {
	ID         uuid.UUID         `json:"id,omitzero" yaml:"id,omitempty"`
	Personal   PersonalInfo      `json:"personal" yaml:"personal"`
	Family     FamilyInfo        `json:"family" yaml:"family"`
	Contact    ContactInfo       `json:"contact" yaml:"contact"`
	Education  []Education       `json:"education" yaml:"education"`
	Occupation []Occupation      `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Lifestyle  Lifestyle         `json:"lifestyle" yaml:"lifestyle"`
	Partner    PartnerPreference `json:"partner,omitzero" yaml:"partner,omitempty"`
	Horoscope  Horoscope         `json:"horoscope,omitzero" yaml:"horoscope,omitempty"`
}

// PersonalInfo covers identity and culturally conditional attributes. Caste,
// SubCaste, Gotra and Sect are only meaningful under certain region/religion
// combinations; whether they are required is decided by the regional rules,
// not by this struct.
type PersonalInfo struct {
	Name         string   `json:"name" yaml:"name"`
	Age          int      `json:"age" yaml:"age"`
	Gender       Gender   `json:"gender" yaml:"gender"`
	DateOfBirth  string   `json:"date_of_birth" yaml:"date_of_birth"`
	Height       float64  `json:"height,omitempty" yaml:"height,omitempty"`
	HeightUnit   string   `json:"height_unit,omitempty" yaml:"height_unit,omitempty"`
	Weight       float64  `json:"weight,omitempty" yaml:"weight,omitempty"`
	Nationality  string   `json:"nationality,omitempty" yaml:"nationality,omitempty"`
	Religion     string   `json:"religion" yaml:"religion"`
	MotherTongue string   `json:"mother_tongue" yaml:"mother_tongue"`
	Languages    []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	Caste        string   `json:"caste,omitempty" yaml:"caste,omitempty"`
	SubCaste     string   `json:"sub_caste,omitempty" yaml:"sub_caste,omitempty"`
	Gotra        string   `json:"gotra,omitempty" yaml:"gotra,omitempty"`
	Sect         string   `json:"sect,omitempty" yaml:"sect,omitempty"`
}

// FamilyInfo describes the family background. Married sibling counts can
// never exceed the corresponding sibling counts; the schema validator
// enforces that invariant.
type FamilyInfo struct {
	FamilyType       string `json:"family_type,omitempty" yaml:"family_type,omitempty"`
	FamilyStatus     string `json:"family_status,omitempty" yaml:"family_status,omitempty"`
	FamilyValues     string `json:"family_values,omitempty" yaml:"family_values,omitempty"`
	FatherName       string `json:"father_name,omitempty" yaml:"father_name,omitempty"`
	FatherOccupation string `json:"father_occupation,omitempty" yaml:"father_occupation,omitempty"`
	FatherStatus     string `json:"father_status,omitempty" yaml:"father_status,omitempty"`
	MotherName       string `json:"mother_name,omitempty" yaml:"mother_name,omitempty"`
	MotherOccupation string `json:"mother_occupation,omitempty" yaml:"mother_occupation,omitempty"`
	MotherStatus     string `json:"mother_status,omitempty" yaml:"mother_status,omitempty"`
	Brothers         int    `json:"brothers" yaml:"brothers"`
	MarriedBrothers  int    `json:"married_brothers" yaml:"married_brothers"`
	Sisters          int    `json:"sisters" yaml:"sisters"`
	MarriedSisters   int    `json:"married_sisters" yaml:"married_sisters"`
}

// ContactInfo holds reachability and residence details.
type ContactInfo struct {
	Email         string `json:"email" yaml:"email"`
	Phone         string `json:"phone" yaml:"phone"`
	Address       string `json:"address,omitempty" yaml:"address,omitempty"`
	City          string `json:"city" yaml:"city"`
	State         string `json:"state,omitempty" yaml:"state,omitempty"`
	Country       string `json:"country" yaml:"country"`
	PostalCode    string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	ResidenceType string `json:"residence_type,omitempty" yaml:"residence_type,omitempty"`
}

// Education is one attainment entry. Every entry must carry either a
// percentage or a grade.
type Education struct {
	Level       EducationLevel `json:"level" yaml:"level"`
	Degree      string         `json:"degree,omitempty" yaml:"degree,omitempty"`
	Institution string         `json:"institution,omitempty" yaml:"institution,omitempty"`
	Year        int            `json:"year,omitempty" yaml:"year,omitempty"`
	Percentage  float64        `json:"percentage,omitempty" yaml:"percentage,omitempty"`
	Grade       string         `json:"grade,omitempty" yaml:"grade,omitempty"`
}

// Occupation is one employment entry.
type Occupation struct {
	EmploymentType string  `json:"employment_type,omitempty" yaml:"employment_type,omitempty"`
	Occupation     string  `json:"occupation" yaml:"occupation"`
	Industry       string  `json:"industry,omitempty" yaml:"industry,omitempty"`
	AnnualIncome   float64 `json:"annual_income,omitempty" yaml:"annual_income,omitempty"`
	WorkLocation   string  `json:"work_location,omitempty" yaml:"work_location,omitempty"`
}

// Lifestyle captures habits compared pairwise by the compatibility assessor.
type Lifestyle struct {
	Diet       Diet     `json:"diet" yaml:"diet"`
	Smoking    Habit    `json:"smoking" yaml:"smoking"`
	Drinking   Habit    `json:"drinking" yaml:"drinking"`
	Hobbies    []string `json:"hobbies,omitempty" yaml:"hobbies,omitempty"`
	Interests  []string `json:"interests,omitempty" yaml:"interests,omitempty"`
	DressStyle string   `json:"dress_style,omitempty" yaml:"dress_style,omitempty"`
}

// PartnerPreference is the acceptance envelope for a match. Ranges must be
// well ordered (AgeMax > AgeMin, HeightMax >= HeightMin) when set.
type PartnerPreference struct {
	AgeMin          int             `json:"age_min,omitempty" yaml:"age_min,omitempty"`
	AgeMax          int             `json:"age_max,omitempty" yaml:"age_max,omitempty"`
	HeightMin       float64         `json:"height_min,omitempty" yaml:"height_min,omitempty"`
	HeightMax       float64         `json:"height_max,omitempty" yaml:"height_max,omitempty"`
	MaritalStatuses []MaritalStatus `json:"marital_statuses,omitempty" yaml:"marital_statuses,omitempty"`
	Religions       []string        `json:"religions,omitempty" yaml:"religions,omitempty"`
	Castes          []string        `json:"castes,omitempty" yaml:"castes,omitempty"`
	EducationLevels []string        `json:"education_levels,omitempty" yaml:"education_levels,omitempty"`
	Occupations     []string        `json:"occupations,omitempty" yaml:"occupations,omitempty"`
	Locations       []string        `json:"locations,omitempty" yaml:"locations,omitempty"`
	MotherTongues   []string        `json:"mother_tongues,omitempty" yaml:"mother_tongues,omitempty"`
}

// Horoscope holds astrological details. BirthTime and BirthPlace become
// required once HasHoroscope is set.
type Horoscope struct {
	HasHoroscope bool     `json:"has_horoscope" yaml:"has_horoscope"`
	BirthTime    string   `json:"birth_time,omitempty" yaml:"birth_time,omitempty"`
	BirthPlace   string   `json:"birth_place,omitempty" yaml:"birth_place,omitempty"`
	Nakshatra    string   `json:"nakshatra,omitempty" yaml:"nakshatra,omitempty"`
	Manglik      string   `json:"manglik,omitempty" yaml:"manglik,omitempty"`
	Dosh         []string `json:"dosh,omitempty" yaml:"dosh,omitempty"`
}

// HighestEducation returns the highest-ranked education level across all
// entries, or the empty level when the profile has none.
func (p *Profile) HighestEducation() EducationLevel {
	var best EducationLevel
	for _, e := range p.Education {
		if EducationRank(e.Level) > EducationRank(best) {
			best = e.Level
		}
	}
	return best
}
