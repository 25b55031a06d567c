package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail validates a basic email address shape. Empty values pass; pair
// with Required when the field is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || emailPattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Matches validates value against a compiled pattern. Empty values pass.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match format %s", pattern.String()),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": pattern.String(),
			},
		},
	}
}

// ValidDate validates an ISO calendar date (YYYY-MM-DD). Empty values pass.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := time.Parse("2006-01-02", value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date in YYYY-MM-DD format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Digits extracts the decimal digits from a phone-like value, dropping
// spaces, dashes and a leading + country marker.
func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone validates that a phone number carries between min and max
// digits. Empty values pass.
func ValidPhone(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			n := len(Digits(value))
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain between %d and %d digits", min, max),
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
