package compat

import (
	"fmt"
	"strings"

	"github.com/vivahlabs/biodatakit/pkg/profile"
)

// Verdict is the aggregate result of one pairwise assessment.
type Verdict struct {
	IsCompatible      bool     `json:"is_compatible"`
	HasWarnings       bool     `json:"has_warnings"`
	Incompatibilities []string `json:"incompatibilities,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
}

// maxAgeGapYears is the soft threshold for the absolute age difference.
const maxAgeGapYears = 15

// maxEducationGapSteps is the soft threshold for the distance between the
// highest education levels on the ordered scale.
const maxEducationGapSteps = 2

type severity int

const (
	hard severity = iota
	soft
)

// predicate is one pairwise comparison. mismatch is true when the pair
// conflicts; msg describes the conflict symmetrically.
type predicate struct {
	severity severity
	eval     func(a, b *profile.Profile) (mismatch bool, msg string)
}

// battery is the fixed comparison set, hard checks first so incompatibility
// messages lead the verdict.
var battery = []predicate{
	{hard, func(a, b *profile.Profile) (bool, string) {
		if a.Lifestyle.Diet == b.Lifestyle.Diet {
			return false, ""
		}
		return true, pairMsg("dietary preferences differ", string(a.Lifestyle.Diet), string(b.Lifestyle.Diet))
	}},
	{hard, func(a, b *profile.Profile) (bool, string) {
		if a.Lifestyle.Smoking == b.Lifestyle.Smoking {
			return false, ""
		}
		return true, pairMsg("smoking habits differ", string(a.Lifestyle.Smoking), string(b.Lifestyle.Smoking))
	}},
	{hard, func(a, b *profile.Profile) (bool, string) {
		if a.Lifestyle.Drinking == b.Lifestyle.Drinking {
			return false, ""
		}
		return true, pairMsg("drinking habits differ", string(a.Lifestyle.Drinking), string(b.Lifestyle.Drinking))
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		if strings.EqualFold(a.Personal.Religion, b.Personal.Religion) {
			return false, ""
		}
		return true, pairMsg("religions differ", strings.ToLower(a.Personal.Religion), strings.ToLower(b.Personal.Religion))
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		if !strings.EqualFold(a.Personal.Religion, "hindu") || !strings.EqualFold(b.Personal.Religion, "hindu") {
			return false, ""
		}
		if a.Personal.Caste == "" || b.Personal.Caste == "" || strings.EqualFold(a.Personal.Caste, b.Personal.Caste) {
			return false, ""
		}
		return true, pairMsg("castes differ", a.Personal.Caste, b.Personal.Caste)
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		gap := a.Personal.Age - b.Personal.Age
		if gap < 0 {
			gap = -gap
		}
		if gap <= maxAgeGapYears {
			return false, ""
		}
		return true, fmt.Sprintf("age difference of %d years exceeds %d years", gap, maxAgeGapYears)
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		if strings.EqualFold(a.Contact.Country, b.Contact.Country) {
			return false, ""
		}
		return true, pairMsg("countries of residence differ", a.Contact.Country, b.Contact.Country)
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		if a.Family.FamilyValues == "" || b.Family.FamilyValues == "" ||
			strings.EqualFold(a.Family.FamilyValues, b.Family.FamilyValues) {
			return false, ""
		}
		return true, pairMsg("family values differ", a.Family.FamilyValues, b.Family.FamilyValues)
	}},
	{soft, func(a, b *profile.Profile) (bool, string) {
		la, lb := a.HighestEducation(), b.HighestEducation()
		ra, rb := profile.EducationRank(la), profile.EducationRank(lb)
		if ra == 0 || rb == 0 {
			return false, ""
		}
		gap := ra - rb
		if gap < 0 {
			gap = -gap
		}
		if gap <= maxEducationGapSteps {
			return false, ""
		}
		return true, pairMsg(
			fmt.Sprintf("education levels are more than %d steps apart", maxEducationGapSteps),
			string(la), string(lb))
	}},
}

// Assess runs the fixed battery over an unordered pair of profiles.
func Assess(a, b *profile.Profile) Verdict {
	verdict := Verdict{IsCompatible: true}
	for _, p := range battery {
		mismatch, msg := p.eval(a, b)
		if !mismatch {
			continue
		}
		if p.severity == hard {
			verdict.IsCompatible = false
			verdict.Incompatibilities = append(verdict.Incompatibilities, msg)
		} else {
			verdict.Warnings = append(verdict.Warnings, msg)
		}
	}
	verdict.HasWarnings = len(verdict.Warnings) > 0
	return verdict
}

// pairMsg renders the two differing values in lexical order so the message
// text does not depend on argument order.
func pairMsg(prefix, x, y string) string {
	if y < x {
		x, y = y, x
	}
	return fmt.Sprintf("%s: %s vs %s", prefix, x, y)
}
