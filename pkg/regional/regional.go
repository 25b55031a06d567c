package regional

import (
	"fmt"
	"strings"

	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/region"
	"github.com/vivahlabs/biodatakit/pkg/schema"
)

// Violation is one hard regional requirement failure tied to a field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result separates hard failures from advisory warnings.
type Result struct {
	Errors   []Violation `json:"errors,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

// IsEmpty reports whether no regional rule fired.
func (r Result) IsEmpty() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Check runs the regional requirement battery for one profile. Unrecognized
// keys degrade to the default rule set via the registry, which has no
// requirements, so the result is empty for them.
func Check(reg *region.Registry, p *profile.Profile, key region.Key) Result {
	rules := reg.Get(key).Fields
	required := reg.Get(key).Required
	hindu := strings.EqualFold(p.Personal.Religion, "hindu")

	var res Result

	// Flat hard-mandatory fields declared by the rule set.
	for _, field := range required {
		if v, ok := schema.StringValue(p, field); ok && strings.TrimSpace(v) == "" {
			res.Errors = append(res.Errors, Violation{
				Field:   field,
				Message: fmt.Sprintf("%s is required for this region", field),
			})
		}
	}

	if rules.CasteRequired && hindu && strings.TrimSpace(p.Personal.Caste) == "" {
		res.Errors = append(res.Errors, Violation{
			Field:   "personal.caste",
			Message: "caste is required for hindu profiles in this region",
		})
	}

	if rules.ManglikRequired && p.Horoscope.HasHoroscope && strings.TrimSpace(p.Horoscope.Manglik) == "" {
		res.Errors = append(res.Errors, Violation{
			Field:   "horoscope.manglik",
			Message: "manglik status is required when a horoscope is provided",
		})
	}

	if rules.NakshatraRequired && p.Horoscope.HasHoroscope && strings.TrimSpace(p.Horoscope.Nakshatra) == "" {
		res.Errors = append(res.Errors, Violation{
			Field:   "horoscope.nakshatra",
			Message: "nakshatra is required when a horoscope is provided",
		})
	}

	if len(rules.DietAllowed) > 0 && p.Lifestyle.Diet != "" && !containsFold(rules.DietAllowed, string(p.Lifestyle.Diet)) {
		res.Errors = append(res.Errors, Violation{
			Field:   "lifestyle.diet",
			Message: fmt.Sprintf("diet must be one of: %s", strings.Join(rules.DietAllowed, ", ")),
		})
	}

	if len(rules.DietUnusual) > 0 && containsFold(rules.DietUnusual, string(p.Lifestyle.Diet)) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("a %s diet is unusual for this region", p.Lifestyle.Diet))
	}

	return res
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
