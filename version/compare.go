package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// engineVersion is a major.minor.patch triple as printed by mpv.
type engineVersion [3]int

// parseEngineVersion reads "0.38.0" and "v0.38.0". Anything after the patch
// number, like the "-417-g1d4f8a2" of a git build, is ignored.
func parseEngineVersion(s string) (engineVersion, error) {
	var v engineVersion
	if _, err := fmt.Sscanf(strings.TrimPrefix(strings.TrimSpace(s), "v"), "%d.%d.%d", &v[0], &v[1], &v[2]); err != nil {
		return engineVersion{}, fmt.Errorf("invalid engine version %q: %w", s, err)
	}
	return v, nil
}

// Compare orders two engine versions: 1 if a is newer, -1 if older, 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parseEngineVersion(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseEngineVersion(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if av[i] != bv[i] {
			return lo.Ternary(av[i] > bv[i], 1, -1), nil
		}
	}
	return 0, nil
}
