// Package i18n localizes validation messages produced by the engine.
//
// Message catalogs are YAML files embedded at build time, one per language.
// Every validator rule carries a translation key and a value map; Translate
// renders the catalog template for that key with {placeholder}
// interpolation, falling back to English and finally to the untranslated
// message. Language negotiation uses golang.org/x/text matching so callers
// can pass raw user preferences.
//
// The engine itself never translates; localization is the caller's step,
// typically right before rendering.
package i18n
