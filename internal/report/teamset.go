package report

import (
	"sort"
	"strings"
)

// TeamSet is the set of configured team keys. Keys are compared
// case-insensitively.
type TeamSet map[string]struct{}

// NewTeamSet builds a set from keys, ignoring blanks.
func NewTeamSet(keys ...string) TeamSet {
	set := make(TeamSet, len(keys))
	for _, k := range keys {
		if k = normalizeKey(k); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// Has reports whether key is configured.
func (s TeamSet) Has(key string) bool {
	_, ok := s[normalizeKey(key)]
	return ok
}

// Keys returns the configured keys in sorted order.
func (s TeamSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(k string) string {
	return strings.ToUpper(strings.TrimSpace(k))
}
