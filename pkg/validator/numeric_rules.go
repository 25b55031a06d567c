package validator

import "fmt"

// RequiredNum validates that a numeric value is not the zero value.
func RequiredNum[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value != 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that value >= min.
func MinNum[T Numeric](field string, value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that value <= max.
func MaxNum[T Numeric](field string, value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Between validates that value lies within [min, max].
func Between[T Numeric](field string, value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// MaxOf validates that value does not exceed limit, reporting the limit field
// in the message. Used for cross-field caps such as married sibling counts.
func MaxOf[T Numeric](field string, value, limit T, limitField string) Rule {
	return Rule{
		Check: func() bool {
			return value <= limit
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not exceed %s (%v)", limitField, limit),
			TranslationKey: "validation.max_of",
			TranslationValues: map[string]any{
				"field":       field,
				"limit":       limit,
				"limit_field": limitField,
			},
		},
	}
}

// OrderedRange validates that max > min whenever both bounds are set. A zero
// bound is treated as unset.
func OrderedRange[T Numeric](field string, min, max T) Rule {
	return Rule{
		Check: func() bool {
			if min == 0 || max == 0 {
				return true
			}
			return max > min
		},
		Error: ValidationError{
			Field:          field,
			Message:        "range maximum must be greater than minimum",
			TranslationKey: "validation.ordered_range",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
