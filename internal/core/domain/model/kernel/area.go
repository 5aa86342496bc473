package kernel

import (
	"strings"
	"unicode"

	"dispatch/internal/pkg/errs"
)

// ErrAreaIsNotConstructed is returned when validating a zero-value Area.
var ErrAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"Area must be created via NewArea",
)

// Area is a coverage-area label. It keeps the label as entered for display
// and a normalized key for comparison, so "South Zone", "southzone" and
// "SOUTH ZONE" all refer to the same area.
type Area struct {
	label string
	key   string
}

// NewArea creates an Area from a free-text label. The label must contain at
// least one non-whitespace character.
func NewArea(label string) (Area, error) {
	key := normalizeAreaLabel(label)
	if key == "" {
		return Area{}, errs.NewValueIsRequiredError("area")
	}
	return Area{label: strings.TrimSpace(label), key: key}, nil
}

// normalizeAreaLabel lower-cases the label and strips all whitespace,
// including interior runs.
func normalizeAreaLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Label returns the area label as originally entered (trimmed).
func (a Area) Label() string {
	return a.label
}

// Key returns the normalized comparison key.
func (a Area) Key() string {
	return a.key
}

// IsEqual reports whether two areas refer to the same normalized key.
func (a Area) IsEqual(other Area) bool {
	return a.key == other.key
}

// Validate returns ErrAreaIsNotConstructed for the zero value.
func (a Area) Validate() error {
	if a.key == "" {
		return ErrAreaIsNotConstructed
	}
	return nil
}
