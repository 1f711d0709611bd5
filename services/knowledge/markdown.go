package knowledge

import (
	"fmt"
	"strings"
)

// Sections is the fixed layout of a knowledge base document, in order.
var Sections = []string{
	"About Me",
	"Important People",
	"Work Context",
	"Preferences",
	"Custom Reminders",
	"Notes",
}

// DefaultTemplate returns the initial knowledge base for a new user.
func DefaultTemplate(name string) string {
	var b strings.Builder
	b.WriteString("# Knowledge Base\n")
	for _, section := range Sections {
		b.WriteString("\n## " + section + "\n")
		if section == "About Me" && name != "" {
			b.WriteString("- Name: " + name + "\n")
		}
	}
	return b.String()
}

// AppendToSection inserts content at the end of the named section, just
// before the next "## " header (or at end of document for the last
// section). Unknown sections are an error so typos never silently create
// new headers.
func AppendToSection(doc, section, content string) (string, error) {
	header := "## " + section
	lines := strings.Split(doc, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			start = i
			break
		}
	}
	if start == -1 {
		return "", fmt.Errorf("unknown knowledge section %q", section)
	}

	insert := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "## ") {
			insert = i
			break
		}
	}
	// Back up over blank lines so the new content sits inside the section.
	for insert > start+1 && strings.TrimSpace(lines[insert-1]) == "" {
		insert--
	}

	added := strings.Split(strings.TrimRight(content, "\n"), "\n")
	out := make([]string, 0, len(lines)+len(added))
	out = append(out, lines[:insert]...)
	out = append(out, added...)
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n"), nil
}

// SearchHit is one match in the knowledge base with surrounding context.
type SearchHit struct {
	Line    int    `json:"line"` // 1-based line number of the match
	Text    string `json:"text"`
	Context string `json:"context"`
}

// Search finds case-insensitive substring matches and returns each with
// up to contextLines lines before and after.
func Search(doc, query string, contextLines int) []SearchHit {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)
	lines := strings.Split(doc, "\n")

	var hits []SearchHit
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), lowered) {
			continue
		}
		from := i - contextLines
		if from < 0 {
			from = 0
		}
		to := i + contextLines + 1
		if to > len(lines) {
			to = len(lines)
		}
		hits = append(hits, SearchHit{
			Line:    i + 1,
			Text:    line,
			Context: strings.Join(lines[from:to], "\n"),
		})
	}
	return hits
}
