package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims s and collapses internal whitespace runs to one space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		result.WriteRune(r)
		lastWasSpace = false
	}
	return result.String()
}

// TrimMultiline trims each line of free text and drops trailing blank lines,
// keeping paragraph breaks.
func TrimMultiline(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeCategory(category string) string {
	return strings.ToLower(TrimAndNormalize(category))
}

func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	result := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		normalized := normalizer(item)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, normalized)
	}
	return result
}

func NormalizeWeekdays(days []string) []string {
	return NormalizeStringSlice(days, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
}
