package biodata

import (
	"errors"

	"github.com/vivahlabs/biodatakit/pkg/compat"
	"github.com/vivahlabs/biodatakit/pkg/fieldcontext"
	"github.com/vivahlabs/biodatakit/pkg/profile"
	"github.com/vivahlabs/biodatakit/pkg/region"
	"github.com/vivahlabs/biodatakit/pkg/regional"
	"github.com/vivahlabs/biodatakit/pkg/schema"
)

// ErrNilProfile indicates a caller bug: validation and compatibility need a
// profile value, not user input to report on.
var ErrNilProfile = errors.New("biodata: profile must not be nil")

// FieldError is one violation tied to a field path. The translation fields
// are carried for localizing Message and stay out of serialized results.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`

	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// Result is the merged outcome of one validation call. Warnings never
// affect IsValid.
type Result struct {
	IsValid  bool         `json:"is_valid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Engine validates profiles against an immutable regional rule registry.
type Engine struct {
	registry *region.Registry
	base     schema.Schema
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry injects a custom rule registry, mainly for tests.
func WithRegistry(r *region.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithBaseSchema replaces the region-neutral base schema.
func WithBaseSchema(s schema.Schema) Option {
	return func(e *Engine) {
		if s != nil {
			e.base = s.Clone()
		}
	}
}

// New builds an Engine backed by the embedded rule registry unless options
// say otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: region.Load(),
		base:     schema.Base(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComposeSchema returns the effective schema for a region. Unknown keys
// fall back to the default rule set, which leaves the base schema as is.
func (e *Engine) ComposeSchema(key region.Key) schema.Schema {
	return schema.Compose(e.base, e.registry.Get(key).Fragment)
}

// Validate runs the full single-profile pipeline: structural validation
// against the composed schema, regional requirements, then field-context
// checks using the profile's own region/religion/language. Every violation
// is collected; nothing short-circuits.
func (e *Engine) Validate(p *profile.Profile, key region.Key) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProfile
	}

	var res Result

	for _, verr := range schema.Validate(p, e.ComposeSchema(key)) {
		res.Errors = append(res.Errors, FieldError{
			Field:             verr.Field,
			Message:           verr.Message,
			TranslationKey:    verr.TranslationKey,
			TranslationValues: verr.TranslationValues,
		})
	}

	reqs := regional.Check(e.registry, p, key)
	for _, v := range reqs.Errors {
		res.Errors = append(res.Errors, FieldError{Field: v.Field, Message: v.Message})
	}
	res.Warnings = append(res.Warnings, reqs.Warnings...)

	ctx := fieldcontext.Context{
		Region:   key,
		Religion: p.Personal.Religion,
		Language: p.Personal.MotherTongue,
	}
	for _, field := range fieldcontext.Fields() {
		value, ok := schema.StringValue(p, field)
		if !ok {
			continue
		}
		for _, msg := range fieldcontext.Validate(e.registry, field, value, ctx) {
			res.Errors = append(res.Errors, FieldError{Field: field, Message: msg})
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res, nil
}

// AssessCompatibility classifies an unordered pair of profiles into hard
// incompatibilities and soft warnings.
func (e *Engine) AssessCompatibility(a, b *profile.Profile) (compat.Verdict, error) {
	if a == nil || b == nil {
		return compat.Verdict{}, ErrNilProfile
	}
	return compat.Assess(a, b), nil
}
