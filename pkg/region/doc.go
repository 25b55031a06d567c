// Package region holds the static regional rule registry driving
// culture-specific validation behavior.
//
// Rule sets are authored in an embedded YAML document and parsed once; the
// resulting Registry is immutable and safe for unsynchronized concurrent
// reads. Each rule set associates a region key with a schema extension
// fragment, a list of hard-mandatory field paths, and the per-field
// contextual constraints consumed by the field-context validator.
//
// Lookups are fail-open: Registry.Get returns the default (least
// restrictive) rule set for any unrecognized key, because region selection
// is user input and must never make validation itself fail. Callers that
// prefer to reject unknown keys outright can parse input through ParseKey
// first.
package region
