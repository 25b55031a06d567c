package region

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vivahlabs/biodatakit/pkg/schema"
)

//go:embed rules.yaml
var rulesYAML []byte

// FieldRules carries the per-region contextual constraints consumed by the
// field-context validator and the regional requirements checker. Zero values
// mean "no opinion".
type FieldRules struct {
	// HeightUnit is the customary unit for stating height in this region.
	HeightUnit string `yaml:"height_unit,omitempty" json:"height_unit,omitempty"`
	// PhoneDigits is the expected national phone number length.
	PhoneDigits int `yaml:"phone_digits,omitempty" json:"phone_digits,omitempty"`
	// PhoneLeading lists the digits a national number may start with.
	PhoneLeading []string `yaml:"phone_leading,omitempty" json:"phone_leading,omitempty"`
	// PostalPattern is the postal code format as a regular expression.
	PostalPattern string `yaml:"postal_pattern,omitempty" json:"postal_pattern,omitempty"`
	// CasteRequired marks caste as mandatory for Hindu profiles.
	CasteRequired bool `yaml:"caste_required,omitempty" json:"caste_required,omitempty"`
	// CasteNotCustomary flags that caste is not in use in this region.
	CasteNotCustomary bool `yaml:"caste_not_customary,omitempty" json:"caste_not_customary,omitempty"`
	// GotraCustomary marks gotra as customarily provided by Hindu profiles.
	GotraCustomary bool `yaml:"gotra_customary,omitempty" json:"gotra_customary,omitempty"`
	// ManglikRequired makes manglik status mandatory once a horoscope is
	// provided.
	ManglikRequired bool `yaml:"manglik_required,omitempty" json:"manglik_required,omitempty"`
	// NakshatraRequired makes the birth star mandatory once a horoscope is
	// provided.
	NakshatraRequired bool `yaml:"nakshatra_required,omitempty" json:"nakshatra_required,omitempty"`
	// DietAllowed restricts the diet to the listed values when non-empty.
	DietAllowed []string `yaml:"diet_allowed,omitempty" json:"diet_allowed,omitempty"`
	// DietUnusual lists diets that are unusual for the region and only worth
	// a warning.
	DietUnusual []string `yaml:"diet_unusual,omitempty" json:"diet_unusual,omitempty"`
}

// RuleSet bundles everything the engine knows about one region.
type RuleSet struct {
	Key      Key                `yaml:"-" json:"key"`
	Required []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Fragment []schema.FieldSpec `yaml:"fragment,omitempty" json:"fragment,omitempty"`
	Fields   FieldRules         `yaml:"fields,omitempty" json:"fields,omitempty"`
}

func (rs RuleSet) clone() RuleSet {
	out := rs
	out.Required = append([]string(nil), rs.Required...)
	if rs.Fragment != nil {
		out.Fragment = make([]schema.FieldSpec, len(rs.Fragment))
		for i, f := range rs.Fragment {
			out.Fragment[i] = f.Clone()
		}
	}
	out.Fields.PhoneLeading = append([]string(nil), rs.Fields.PhoneLeading...)
	out.Fields.DietAllowed = append([]string(nil), rs.Fields.DietAllowed...)
	out.Fields.DietUnusual = append([]string(nil), rs.Fields.DietUnusual...)
	return out
}

// Registry is the immutable region → rule set table. The zero value is not
// usable; build one with Parse or use Load.
type Registry struct {
	sets map[Key]RuleSet
}

// Parse builds a Registry from a YAML document mapping region keys to rule
// sets. The document must include a "default" entry, since fail-open lookups
// fall back to it.
func Parse(data []byte) (*Registry, error) {
	var raw map[Key]RuleSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("region: parse rules: %w", err)
	}
	if _, ok := raw[Default]; !ok {
		return nil, errors.New("region: rules document is missing the default entry")
	}
	sets := make(map[Key]RuleSet, len(raw))
	for key, rs := range raw {
		rs.Key = key
		sets[key] = rs
	}
	return &Registry{sets: sets}, nil
}

var (
	loadOnce     sync.Once
	loadedRules  *Registry
	loadRulesErr error
)

// Load returns the registry parsed from the embedded rules document. The
// document is parsed once per process; the embedded rules are part of the
// build, so a parse failure is a programming error and panics.
func Load() *Registry {
	loadOnce.Do(func() {
		loadedRules, loadRulesErr = Parse(rulesYAML)
	})
	if loadRulesErr != nil {
		panic(loadRulesErr)
	}
	return loadedRules
}

// Get returns the rule set for key, falling back to the default entry for
// any unrecognized key. The returned value is a copy; mutating it does not
// affect the registry.
func (r *Registry) Get(key Key) RuleSet {
	if rs, ok := r.sets[key]; ok {
		return rs.clone()
	}
	return r.sets[Default].clone()
}

// Has reports whether the registry carries an explicit entry for key.
func (r *Registry) Has(key Key) bool {
	_, ok := r.sets[key]
	return ok
}

// RegisteredKeys returns the keys present in the registry, sorted.
func (r *Registry) RegisteredKeys() []Key {
	keys := make([]Key, 0, len(r.sets))
	for k := range r.sets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
