package strong

import (
	"errors"
	"strings"
)

// Culture describes how numbers are written in a locale.
type Culture struct {
	Name             string
	DecimalSeparator string
	GroupSeparator   string
}

// Common cultures.
var (
	Invariant = Culture{Name: "invariant", DecimalSeparator: ".", GroupSeparator: ","}
	German    = Culture{Name: "de-DE", DecimalSeparator: ",", GroupSeparator: "."}
	French    = Culture{Name: "fr-FR", DecimalSeparator: ",", GroupSeparator: " "}
	Swiss     = Culture{Name: "de-CH", DecimalSeparator: ".", GroupSeparator: "'"}
)

// spaceGroups strips every space a locale may use between digit groups:
// plain space, no-break space and narrow no-break space.
var spaceGroups = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "")

var errAmbiguousCulture = errors.New("decimal and group separators must differ")

// normalize rewrites s into the invariant form strconv and decimal accept:
// surrounding space trimmed, group separators dropped, decimal separator as '.'.
func (c Culture) normalize(s string) (string, error) {
	dec := c.DecimalSeparator
	if dec == "" {
		dec = "."
	}
	if dec == c.GroupSeparator {
		return "", errAmbiguousCulture
	}
	s = strings.TrimSpace(s)
	switch c.GroupSeparator {
	case "":
	case " ", "\u00a0", "\u202f":
		s = spaceGroups.Replace(s)
	default:
		s = strings.ReplaceAll(s, c.GroupSeparator, "")
	}
	if dec != "." {
		if strings.Contains(s, ".") {
			return "", ErrInvalidFormat
		}
		s = strings.ReplaceAll(s, dec, ".")
	}
	return s, nil
}
