// Package regional enforces cross-field, region-mandated profile rules that
// a flat field schema cannot express: caste requirements tied to religion,
// horoscope-dependent manglik and nakshatra fields, and regional diet
// restrictions.
//
// Check splits its findings into hard errors and soft warnings. Mandatory
// fields and restricted diets are errors; culturally unusual but harmless
// combinations (a religiously restrictive diet in a western profile) are
// warnings. All checks are independent and additive, so the result set does
// not depend on evaluation order, and regions without special requirements
// produce an empty result.
package regional
