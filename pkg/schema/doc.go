// Package schema composes and applies the declarative field-constraint
// schema for biodata profiles.
//
// A Schema is an ordered list of FieldSpec entries keyed by dotted field
// paths ("personal.age", "contact.phone"). Base returns the region-neutral
// schema; Compose merges a regional extension fragment into it with
// override-by-name semantics. Validate applies a composed schema to a typed
// Profile and collects every structural violation, then runs a fixed battery
// of cross-field invariants (sibling counts, horoscope birth details,
// partner ranges, education percentage-or-grade).
//
// Composition is deterministic and idempotent: composing the same fragment
// twice yields a deeply equal schema, and message ordering follows schema
// order so callers see stable output.
package schema
