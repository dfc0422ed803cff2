// Package versions parses and orders dotted version strings such as "1",
// "1.2" and "1.2.3".
//
// Components compare numerically from left to right. When one version is a
// prefix of the other, the shorter one sorts first, so
//
//	"1" < "1.0" < "1.0.0" < "1.0.1" < "1.1"
package versions

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxParts is the number of components a version may have (major.minor.revision).
const MaxParts = 3

var (
	// ErrEmpty indicates an empty version string.
	ErrEmpty = errors.New("versions: empty version")
	// ErrTooManyParts indicates more than MaxParts components.
	ErrTooManyParts = errors.New("versions: too many components")
	// ErrBadComponent indicates a component that is not a non-negative integer.
	ErrBadComponent = errors.New("versions: bad component")
)

// Version is a parsed version: 1 to MaxParts non-negative components.
type Version struct {
	parts []int
	raw   string
}

// Parse reads a dotted version string.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmpty
	}
	fields := strings.Split(s, ".")
	if len(fields) > MaxParts {
		return Version{}, fmt.Errorf("versions: %q has %d components: %w", s, len(fields), ErrTooManyParts)
	}
	parts := make([]int, len(fields))
	for i, f := range fields {
		if f == "" || strings.TrimLeft(f, "0123456789") != "" {
			return Version{}, fmt.Errorf("versions: %q component %d: %w", s, i, ErrBadComponent)
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return Version{}, fmt.Errorf("versions: %q component %d: %w: %v", s, i, ErrBadComponent, err)
		}
		parts[i] = n
	}

	return Version{parts: parts, raw: s}, nil
}

// MustParse is Parse that panics on error, for literals in tests and examples.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Parts returns a copy of the numeric components.
func (v Version) Parts() []int { return slices.Clone(v.parts) }

// String returns the string the version was parsed from.
func (v Version) String() string { return v.raw }

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
func Compare(a, b Version) int {
	for i := 0; i < len(a.parts) && i < len(b.parts); i++ {
		if a.parts[i] != b.parts[i] {
			if a.parts[i] < b.parts[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.parts) < len(b.parts):
		return -1
	case len(a.parts) > len(b.parts):
		return 1
	}

	return 0
}

// Sort returns the versions in ascending order. Equal versions keep their
// input order and the input slice is left untouched. The first unparsable
// entry aborts the sort.
// Complexity: O(n log n) comparisons.
func Sort(list []string) ([]string, error) {
	parsed := make([]Version, len(list))
	for i, s := range list {
		v, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("versions: entry %d: %w", i, err)
		}
		parsed[i] = v
	}
	slices.SortStableFunc(parsed, Compare)

	out := make([]string, len(parsed))
	for i, v := range parsed {
		out[i] = v.raw
	}

	return out, nil
}
