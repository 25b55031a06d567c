package region

import (
	"fmt"
	"strings"
)

// Key selects the regional/cultural rule context for a profile. It is chosen
// once per profile and stays fixed for the duration of a validation or
// compatibility call.
type Key string

const (
	NorthIndian Key = "north_indian"
	SouthIndian Key = "south_indian"
	Bengali     Key = "bengali"
	Gujarati    Key = "gujarati"
	Punjabi     Key = "punjabi"
	Muslim      Key = "muslim"
	Western     Key = "western"
	Default     Key = "default"
)

// Keys returns every supported region key in declaration order.
func Keys() []Key {
	return []Key{NorthIndian, SouthIndian, Bengali, Gujarati, Punjabi, Muslim, Western, Default}
}

// ErrUnknownKey is wrapped by ParseKey for unrecognized region input.
var ErrUnknownKey = fmt.Errorf("unknown region key")

// ParseKey is the strict companion to the fail-open Registry.Get: it
// normalizes raw user input and rejects anything that is not a supported
// region key.
func ParseKey(raw string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Keys() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, raw)
}
