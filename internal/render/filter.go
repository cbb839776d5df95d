package render

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterSkills returns a copy of the grouped skills keeping only entries
// that match the pattern. Categories left with no matches are dropped.
// An empty pattern keeps everything.
func FilterSkills(groups map[string][]string, order []string, pattern string) map[string][]string {
	if pattern == "" {
		out := make(map[string][]string, len(groups))
		for cat, items := range groups {
			out[cat] = append([]string(nil), items...)
		}
		return out
	}

	out := make(map[string][]string)
	for _, cat := range order {
		var kept []string
		for _, item := range groups[cat] {
			if MatchSkill(pattern, cat, item) {
				kept = append(kept, item)
			}
		}
		if len(kept) > 0 {
			out[cat] = kept
		}
	}
	return out
}

// MatchSkill matches a skill against a glob pattern, case-insensitively.
// The pattern is tried against the "category/skill" path first, then the
// bare skill name, so both "cloud/*" and "*docker*" work.
func MatchSkill(pattern, category, skill string) bool {
	pattern = strings.ToLower(pattern)
	path := strings.ToLower(category + "/" + skill)

	// Try doublestar glob matching first (supports **).
	matched, err := doublestar.Match(pattern, path)
	if err == nil && matched {
		return true
	}

	matched, err = doublestar.Match(pattern, strings.ToLower(skill))
	if err == nil && matched {
		return true
	}

	// Bare words act as substring matches so the interactive filter can be
	// typed without glob syntax.
	if !strings.ContainsAny(pattern, "*?[{") {
		return strings.Contains(path, pattern)
	}
	return false
}
