package fieldcontext

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/vivahlabs/biodatakit/pkg/region"
	"github.com/vivahlabs/biodatakit/pkg/validator"
)

// Context is the cultural context a field value is judged under. Language is
// carried for callers that localize messages; the rules here do not branch
// on it.
type Context struct {
	Region   region.Key
	Religion string
	Language string
}

// Fields returns the culturally sensitive field paths this package has an
// opinion about, in the order the orchestrator checks them.
func Fields() []string {
	return []string{
		"personal.height_unit",
		"contact.phone",
		"contact.postal_code",
		"personal.caste",
		"personal.gotra",
		"horoscope.manglik",
	}
}

// checkFunc validates one field value against the regional rules.
type checkFunc func(value string, rules region.FieldRules, ctx Context) []string

// checks keys the fixed rule table by field path.
var checks = map[string]checkFunc{
	"personal.height_unit": checkHeightUnit,
	"contact.phone":        checkPhone,
	"contact.postal_code":  checkPostalCode,
	"personal.caste":       checkCaste,
	"personal.gotra":       checkGotra,
	"horoscope.manglik":    checkManglik,
}

// Validate returns every contextual violation for one field value, or nil
// when the field is unknown or no regional rule applies.
func Validate(reg *region.Registry, field, value string, ctx Context) []string {
	check, ok := checks[field]
	if !ok {
		return nil
	}
	return check(value, reg.Get(ctx.Region).Fields, ctx)
}

func isHindu(ctx Context) bool {
	return strings.EqualFold(ctx.Religion, "hindu")
}

func checkHeightUnit(value string, rules region.FieldRules, _ Context) []string {
	if value == "" || rules.HeightUnit == "" || value == rules.HeightUnit {
		return nil
	}
	return []string{fmt.Sprintf("height is customarily given in %s for this region", rules.HeightUnit)}
}

func checkPhone(value string, rules region.FieldRules, _ Context) []string {
	if value == "" {
		return nil
	}
	digits := validator.Digits(value)
	// A leading country code is tolerated; judge the national part.
	if rules.PhoneDigits > 0 && len(digits) > rules.PhoneDigits {
		digits = digits[len(digits)-rules.PhoneDigits:]
	}

	var violations []string
	if rules.PhoneDigits > 0 && len(digits) != rules.PhoneDigits {
		violations = append(violations, fmt.Sprintf("phone number must have %d digits", rules.PhoneDigits))
	}
	if len(rules.PhoneLeading) > 0 && len(digits) > 0 {
		lead := string(digits[0])
		allowed := false
		for _, d := range rules.PhoneLeading {
			if lead == d {
				allowed = true
				break
			}
		}
		if !allowed {
			violations = append(violations, fmt.Sprintf("phone number must start with one of: %s", strings.Join(rules.PhoneLeading, ", ")))
		}
	}
	return violations
}

var postalPatterns sync.Map // string -> *regexp.Regexp

func checkPostalCode(value string, rules region.FieldRules, _ Context) []string {
	if value == "" || rules.PostalPattern == "" {
		return nil
	}
	var re *regexp.Regexp
	if cached, ok := postalPatterns.Load(rules.PostalPattern); ok {
		re = cached.(*regexp.Regexp)
	} else {
		compiled, err := regexp.Compile(rules.PostalPattern)
		if err != nil {
			return nil
		}
		postalPatterns.Store(rules.PostalPattern, compiled)
		re = compiled
	}
	if re.MatchString(value) {
		return nil
	}
	return []string{"postal code format is not valid for this region"}
}

// checkCaste covers the prohibition side only: regions where caste is not in
// use flag a provided value. The requirement side (caste mandatory for Hindu
// profiles) lives in the regional requirements checker so the two rule sets
// never produce duplicate messages.
func checkCaste(value string, rules region.FieldRules, _ Context) []string {
	if value != "" && rules.CasteNotCustomary {
		return []string{"caste is not customarily used in this region"}
	}
	return nil
}

func checkGotra(value string, rules region.FieldRules, ctx Context) []string {
	if value == "" && rules.GotraCustomary && isHindu(ctx) {
		return []string{"gotra is customarily provided in this region"}
	}
	return nil
}

// checkManglik validates the value format; whether the field is mandatory is
// a cross-field question (it depends on the horoscope flag) answered by the
// regional requirements checker.
func checkManglik(value string, _ region.FieldRules, _ Context) []string {
	if value == "" {
		return nil
	}
	for _, s := range []string{"yes", "no", "partial", "unknown"} {
		if value == s {
			return nil
		}
	}
	return []string{"manglik status must be one of: yes, no, partial, unknown"}
}
