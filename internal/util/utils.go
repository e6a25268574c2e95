package util

import "strings"

// ParseCommaSeparatedTags splits the first form value on commas.
// Additional values are ignored (the frontend sends one CSV string).
func ParseCommaSeparatedTags(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	raw := values[0]
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
