// Package biodata is the top-level entry point of the validation engine.
//
// An Engine composes the region-specific schema, validates a profile
// structurally, applies the regional requirements checker, and runs the
// field-context validator over the culturally sensitive field list, merging
// everything into one Result. It also re-exports schema composition (for
// callers pre-rendering required-field indicators) and pairwise
// compatibility assessment.
//
// The engine is stateless apart from its injected immutable registry, so a
// single Engine value is safe for unsynchronized concurrent use. All
// user-input problems come back as structured data; the only error returns
// are nil-profile programming mistakes by the caller.
package biodata
