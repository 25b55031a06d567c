package schema

// Compose merges a regional extension fragment into a base schema. A
// fragment entry with the same field path replaces the base entry in place,
// preserving its position; entries for new paths are appended in fragment
// order. Neither input is mutated, and composing an empty fragment returns a
// plain copy of the base.
func Compose(base Schema, fragment []FieldSpec) Schema {
	out := base.Clone()
	index := make(map[string]int, len(out))
	for i, f := range out {
		index[f.Name] = i
	}
	for _, f := range fragment {
		if i, ok := index[f.Name]; ok {
			out[i] = f.Clone()
			continue
		}
		index[f.Name] = len(out)
		out = append(out, f.Clone())
	}
	return out
}
