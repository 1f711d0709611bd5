package assistant

import "strings"

// ExtractJSON pulls a JSON payload out of a model reply that may wrap it in
// markdown code fences or surrounding prose.
func ExtractJSON(s string) string {
	if body, ok := fencedBlock(s, "```json"); ok {
		return body
	}
	if body, ok := fencedBlock(s, "```"); ok {
		return body
	}

	// Fall back to the first balanced {...} or [...] run.
	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
	}
	return s
}

func fencedBlock(s, fence string) (string, bool) {
	idx := strings.Index(s, fence)
	if idx == -1 {
		return "", false
	}
	start := idx + len(fence)
	end := strings.Index(s[start:], "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(s[start : start+end]), true
}
