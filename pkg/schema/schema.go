package schema

// Kind classifies how a field's value is interpreted during validation.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindEnum   Kind = "enum"
	KindEmail  Kind = "email"
	KindDate   Kind = "date"
	KindPhone  Kind = "phone"
)

// FieldSpec is the declarative constraint set for one field path. For phone
// kinds Min/Max bound the digit count; for numeric kinds they bound the
// value. A nil bound means unconstrained.
type FieldSpec struct {
	Name     string   `json:"name" yaml:"name"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MinLen   int      `json:"min_len,omitempty" yaml:"min_len,omitempty"`
	MaxLen   int      `json:"max_len,omitempty" yaml:"max_len,omitempty"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	OneOf    []string `json:"one_of,omitempty" yaml:"one_of,omitempty"`
}

// Clone returns a deep copy so callers can compose without aliasing.
func (f FieldSpec) Clone() FieldSpec {
	out := f
	if f.Min != nil {
		v := *f.Min
		out.Min = &v
	}
	if f.Max != nil {
		v := *f.Max
		out.Max = &v
	}
	if f.OneOf != nil {
		out.OneOf = append([]string(nil), f.OneOf...)
	}
	return out
}

// Schema is an ordered field-constraint list. Order is significant only for
// deterministic message output.
type Schema []FieldSpec

// Get returns the spec for a field path.
func (s Schema) Get(name string) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Names returns field paths in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i, f := range s {
		out[i] = f.Clone()
	}
	return out
}

// NumPtr is a convenience for building Min/Max bounds in literals.
func NumPtr(v float64) *float64 {
	return &v
}
