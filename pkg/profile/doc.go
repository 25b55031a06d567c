// Package profile defines the matrimonial biodata profile aggregate consumed
// by the validation and compatibility engines.
//
// A Profile is built field-by-field by the form layer and is treated as a
// read-only input everywhere in this module: nothing here mutates or persists
// it. All structs carry json and yaml tags so profiles can cross the wire or
// be loaded from files by tooling.
//
// Enumerated attributes (diet, smoking/drinking frequency, gender, education
// level, marital status) are typed string constants rather than free text so
// that rule tables elsewhere can match on them reliably. Education levels
// additionally carry an ordered rank used for step-distance comparisons.
package profile
