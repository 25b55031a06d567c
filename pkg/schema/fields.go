package schema

import "github.com/vivahlabs/biodatakit/pkg/profile"

// fieldValue is the extracted raw value for one field path. Numeric fields
// set isNum; everything else is carried as a string.
type fieldValue struct {
	str   string
	num   float64
	isNum bool
}

// extractors maps every known field path to its accessor. Schema entries for
// paths missing here are skipped during validation: the engine validates
// what it knows and stays silent otherwise.
var extractors = map[string]func(p *profile.Profile) fieldValue{
	"personal.name":          func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Name} },
	"personal.age":           func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Personal.Age), isNum: true} },
	"personal.gender":        func(p *profile.Profile) fieldValue { return fieldValue{str: string(p.Personal.Gender)} },
	"personal.date_of_birth": func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.DateOfBirth} },
	"personal.height":        func(p *profile.Profile) fieldValue { return fieldValue{num: p.Personal.Height, isNum: true} },
	"personal.height_unit":   func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.HeightUnit} },
	"personal.weight":        func(p *profile.Profile) fieldValue { return fieldValue{num: p.Personal.Weight, isNum: true} },
	"personal.nationality":   func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Nationality} },
	"personal.religion":      func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Religion} },
	"personal.mother_tongue": func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.MotherTongue} },
	"personal.caste":         func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Caste} },
	"personal.sub_caste":     func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.SubCaste} },
	"personal.gotra":         func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Gotra} },
	"personal.sect":          func(p *profile.Profile) fieldValue { return fieldValue{str: p.Personal.Sect} },

	"contact.email":          func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.Email} },
	"contact.phone":          func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.Phone} },
	"contact.address":        func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.Address} },
	"contact.city":           func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.City} },
	"contact.state":          func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.State} },
	"contact.country":        func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.Country} },
	"contact.postal_code":    func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.PostalCode} },
	"contact.residence_type": func(p *profile.Profile) fieldValue { return fieldValue{str: p.Contact.ResidenceType} },

	"family.family_type":      func(p *profile.Profile) fieldValue { return fieldValue{str: p.Family.FamilyType} },
	"family.family_status":    func(p *profile.Profile) fieldValue { return fieldValue{str: p.Family.FamilyStatus} },
	"family.family_values":    func(p *profile.Profile) fieldValue { return fieldValue{str: p.Family.FamilyValues} },
	"family.brothers":         func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Family.Brothers), isNum: true} },
	"family.married_brothers": func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Family.MarriedBrothers), isNum: true} },
	"family.sisters":          func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Family.Sisters), isNum: true} },
	"family.married_sisters":  func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Family.MarriedSisters), isNum: true} },

	"lifestyle.diet":        func(p *profile.Profile) fieldValue { return fieldValue{str: string(p.Lifestyle.Diet)} },
	"lifestyle.smoking":     func(p *profile.Profile) fieldValue { return fieldValue{str: string(p.Lifestyle.Smoking)} },
	"lifestyle.drinking":    func(p *profile.Profile) fieldValue { return fieldValue{str: string(p.Lifestyle.Drinking)} },
	"lifestyle.dress_style": func(p *profile.Profile) fieldValue { return fieldValue{str: p.Lifestyle.DressStyle} },

	"partner.age_min":    func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Partner.AgeMin), isNum: true} },
	"partner.age_max":    func(p *profile.Profile) fieldValue { return fieldValue{num: float64(p.Partner.AgeMax), isNum: true} },
	"partner.height_min": func(p *profile.Profile) fieldValue { return fieldValue{num: p.Partner.HeightMin, isNum: true} },
	"partner.height_max": func(p *profile.Profile) fieldValue { return fieldValue{num: p.Partner.HeightMax, isNum: true} },

	"horoscope.birth_time":  func(p *profile.Profile) fieldValue { return fieldValue{str: p.Horoscope.BirthTime} },
	"horoscope.birth_place": func(p *profile.Profile) fieldValue { return fieldValue{str: p.Horoscope.BirthPlace} },
	"horoscope.nakshatra":   func(p *profile.Profile) fieldValue { return fieldValue{str: p.Horoscope.Nakshatra} },
	"horoscope.manglik":     func(p *profile.Profile) fieldValue { return fieldValue{str: p.Horoscope.Manglik} },
}

// StringValue returns the string value of a known field path. The second
// return is false for unknown or numeric paths.
func StringValue(p *profile.Profile, name string) (string, bool) {
	ext, ok := extractors[name]
	if !ok {
		return "", false
	}
	v := ext(p)
	if v.isNum {
		return "", false
	}
	return v.str, true
}

// NumberValue returns the numeric value of a known field path. The second
// return is false for unknown or non-numeric paths.
func NumberValue(p *profile.Profile, name string) (float64, bool) {
	ext, ok := extractors[name]
	if !ok {
		return 0, false
	}
	v := ext(p)
	if !v.isNum {
		return 0, false
	}
	return v.num, true
}
