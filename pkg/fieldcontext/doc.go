// Package fieldcontext validates single field values under a
// region/religion/language context.
//
// The checks cover a fixed, enumerable set of culturally sensitive fields:
// height-unit convention, phone digit count and leading digits, postal code
// format, caste usage, gotra custom, and manglik status. Rules are looked up
// from the regional registry per (field, region, religion); every violation
// for a field is returned, nothing short-circuits. Unknown (field, region)
// combinations yield nil — the validator only speaks about what it knows.
package fieldcontext
