// Package compat assesses pairwise compatibility between two biodata
// profiles.
//
// Assess runs a fixed battery of symmetric comparisons. Each predicate is
// tagged hard or soft: hard mismatches (diet, smoking, drinking) force the
// verdict to incompatible, soft mismatches (religion, caste, age gap,
// country, family values, education gap) surface as warnings without
// blocking. The battery is a classifier producing actionable messages; it
// deliberately computes no numeric match score.
//
// Every predicate and every message is symmetric in its arguments, so for a
// given unordered pair the verdict is identical regardless of argument
// order. Inputs are never mutated.
package compat
