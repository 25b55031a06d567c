// Package validator provides the declarative rule primitives used by the
// biodata validation engine.
//
// A Rule couples a boolean Check with translation-friendly error metadata.
// Rules are evaluated with Apply, which aggregates every failure into a
// ValidationErrors slice satisfying the error interface, so a caller can
// surface all field problems at once instead of one at a time.
//
// Every constructor is a pure function over its arguments; the package holds
// no state and is safe for unsynchronized concurrent use.
//
// Usage:
//
//	err := validator.Apply(
//	    validator.Required("personal.name", name),
//	    validator.Between("personal.age", age, 18, 100),
//	    validator.ValidEmail("contact.email", email),
//	)
//	if verrs := validator.Extract(err); verrs != nil {
//	    // iterate field-level messages, translate via i18n keys
//	}
package validator
