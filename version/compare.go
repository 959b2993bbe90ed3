package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a release number. Pre-release and build suffixes are dropped.
type Semver [3]int

// Parse reads "1.2.3", "v1.2.3" or "1.2.3-rc.1".
func Parse(s string) (Semver, error) {
	var v Semver

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")
	parts := strings.Split(core, ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q: want major.minor.patch", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("version %q: %q is not a release number", s, part)
		}
		v[i] = n
	}
	return v, nil
}

// Newer reports whether v is released after other.
func (v Semver) Newer(other Semver) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] > other[i]
		}
	}
	return false
}

func (v Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// Compare returns 1 when a is newer than b, -1 when older and 0 when equal.
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}

	switch {
	case av.Newer(bv):
		return 1, nil
	case bv.Newer(av):
		return -1, nil
	default:
		return 0, nil
	}
}
