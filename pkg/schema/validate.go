package schema

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/validator"
)

// patternCache avoids recompiling fragment patterns on every validation.
var patternCache sync.Map // string -> *regexp.Regexp

func compiledPattern(expr string) *regexp.Regexp {
	if cached, ok := patternCache.Load(expr); ok {
		return cached.(*regexp.Regexp)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		// Invalid patterns from a fragment are ignored rather than turned
		// into user-facing errors.
		return nil
	}
	patternCache.Store(expr, re)
	return re
}

// Validate applies the composed schema to a profile and collects every
// structural violation, followed by the fixed cross-field invariant battery.
// The returned slice is nil when the profile is structurally valid.
func Validate(p *profile.Profile, s Schema) validator.ValidationErrors {
	var rules []validator.Rule
	for _, spec := range s {
		rules = append(rules, fieldRules(p, spec)...)
	}
	rules = append(rules, crossFieldRules(p)...)

	return validator.Extract(validator.Apply(rules...))
}

// fieldRules builds the rule set for one field. Unknown field paths produce
// no rules: the schema validates what it knows and stays silent otherwise.
func fieldRules(p *profile.Profile, spec FieldSpec) []validator.Rule {
	ext, ok := extractors[spec.Name]
	if !ok {
		return nil
	}
	v := ext(p)

	var rules []validator.Rule
	if v.isNum {
		if spec.Required {
			rules = append(rules, validator.RequiredNum(spec.Name, v.num))
		}
		if v.num != 0 || spec.Required {
			if spec.Min != nil {
				rules = append(rules, validator.MinNum(spec.Name, v.num, *spec.Min))
			}
			if spec.Max != nil {
				rules = append(rules, validator.MaxNum(spec.Name, v.num, *spec.Max))
			}
		}
		return rules
	}

	if spec.Required {
		rules = append(rules, validator.Required(spec.Name, v.str))
	}
	if v.str == "" {
		return rules
	}
	if spec.MinLen > 0 {
		rules = append(rules, validator.MinLen(spec.Name, v.str, spec.MinLen))
	}
	if spec.MaxLen > 0 {
		rules = append(rules, validator.MaxLen(spec.Name, v.str, spec.MaxLen))
	}
	switch spec.Kind {
	case KindEnum:
		rules = append(rules, validator.InListString(spec.Name, v.str, spec.OneOf))
	case KindEmail:
		rules = append(rules, validator.ValidEmail(spec.Name, v.str))
	case KindDate:
		rules = append(rules, validator.ValidDate(spec.Name, v.str))
	case KindPhone:
		min, max := 7, 15
		if spec.Min != nil {
			min = int(*spec.Min)
		}
		if spec.Max != nil {
			max = int(*spec.Max)
		}
		rules = append(rules, validator.ValidPhone(spec.Name, v.str, min, max))
	}
	if spec.Pattern != "" {
		if re := compiledPattern(spec.Pattern); re != nil {
			rules = append(rules, validator.Matches(spec.Name, v.str, re))
		}
	}
	return rules
}

// crossFieldRules is the fixed invariant battery a flat field schema cannot
// express. Checks are independent; order only affects message ordering.
func crossFieldRules(p *profile.Profile) []validator.Rule {
	rules := []validator.Rule{
		validator.RequiredSlice("education", p.Education),
		validator.MaxOf("family.married_brothers", p.Family.MarriedBrothers, p.Family.Brothers, "family.brothers"),
		validator.MaxOf("family.married_sisters", p.Family.MarriedSisters, p.Family.Sisters, "family.sisters"),
		validator.OrderedRange("partner.age_range", p.Partner.AgeMin, p.Partner.AgeMax),
		validator.RequiredWhen("horoscope.birth_time", p.Horoscope.HasHoroscope, p.Horoscope.BirthTime, "horoscope details are provided"),
		validator.RequiredWhen("horoscope.birth_place", p.Horoscope.HasHoroscope, p.Horoscope.BirthPlace, "horoscope details are provided"),
	}

	if p.Partner.HeightMin != 0 && p.Partner.HeightMax != 0 {
		rules = append(rules, validator.MaxOf("partner.height_min", p.Partner.HeightMin, p.Partner.HeightMax, "partner.height_max"))
	}

	for i, edu := range p.Education {
		field := fmt.Sprintf("education[%d]", i)
		entry := edu
		rules = append(rules, validator.Rule{
			Check: func() bool {
				return entry.Percentage != 0 || entry.Grade != ""
			},
			Error: validator.ValidationError{
				Field:          field,
				Message:        "must include a percentage or a grade",
				TranslationKey: "validation.education_score",
				TranslationValues: map[string]any{
					"field": field,
				},
			},
		})
		if entry.Percentage != 0 {
			rules = append(rules, validator.Between(field+".percentage", entry.Percentage, 0, 100))
		}
	}

	return rules
}
