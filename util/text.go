package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantify joins count with the noun form that agrees with it.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return strconv.Itoa(count) + " " + noun
}

// ReGroups maps the named groups of the first match of pattern in s.
// Without a match the map is empty.
func ReGroups(pattern *regexp.Regexp, s string) map[string]string {
	match := pattern.FindStringSubmatch(s)
	groups := make(map[string]string, len(match))

	for i, name := range pattern.SubexpNames() {
		if name == "" || i >= len(match) {
			continue
		}
		groups[name] = strings.TrimSpace(match[i])
	}
	return groups
}
