package knowledge

import (
	"strings"
	"testing"
)

func TestDefaultTemplate(t *testing.T) {
	doc := DefaultTemplate("Ada")

	for _, section := range Sections {
		if !strings.Contains(doc, "## "+section) {
			t.Errorf("template missing section %q", section)
		}
	}
	if !strings.Contains(doc, "- Name: Ada") {
		t.Errorf("template should record the user's name, got:\n%s", doc)
	}

	anon := DefaultTemplate("")
	if strings.Contains(anon, "- Name:") {
		t.Errorf("template without a name should not have a name line")
	}
}

func TestAppendToSection(t *testing.T) {
	doc := "# Knowledge Base\n\n## About Me\n- Name: Ada\n\n## Notes\n- old note\n"

	tests := []struct {
		name    string
		section string
		content string
		want    []string // substrings that must appear in order
		wantErr bool
	}{
		{
			name:    "middle section",
			section: "About Me",
			content: "- Likes tea",
			want:    []string{"- Name: Ada", "- Likes tea", "## Notes"},
		},
		{
			name:    "last section",
			section: "Notes",
			content: "- new note",
			want:    []string{"- old note", "- new note"},
		},
		{
			name:    "multiline content",
			section: "Notes",
			content: "- line one\n- line two",
			want:    []string{"- line one", "- line two"},
		},
		{
			name:    "unknown section",
			section: "Secrets",
			content: "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendToSection(doc, tt.section, tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			pos := 0
			for _, want := range tt.want {
				idx := strings.Index(got[pos:], want)
				if idx == -1 {
					t.Fatalf("output missing %q after offset %d:\n%s", want, pos, got)
				}
				pos += idx + len(want)
			}
		})
	}
}

func TestAppendToSectionKeepsOtherSections(t *testing.T) {
	doc := DefaultTemplate("Ada")
	got, err := AppendToSection(doc, "Preferences", "- Coffee before 10am")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, section := range Sections {
		if !strings.Contains(got, "## "+section) {
			t.Errorf("append dropped section %q", section)
		}
	}
	prefIdx := strings.Index(got, "## Preferences")
	remIdx := strings.Index(got, "## Custom Reminders")
	lineIdx := strings.Index(got, "- Coffee before 10am")
	if !(prefIdx < lineIdx && lineIdx < remIdx) {
		t.Errorf("content landed outside the Preferences section:\n%s", got)
	}
}

func TestSearch(t *testing.T) {
	doc := strings.Join([]string{
		"# Knowledge Base",
		"",
		"## Important People",
		"- Maya: sister, birthday in May",
		"- Tom: manager",
		"",
		"## Notes",
		"- call maya about the trip",
	}, "\n")

	hits := Search(doc, "Maya", 2)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(hits), hits)
	}
	if hits[0].Line != 4 {
		t.Errorf("first hit line = %d, want 4", hits[0].Line)
	}
	// Context spans two lines each side.
	if !strings.Contains(hits[0].Context, "## Important People") {
		t.Errorf("context missing preceding line:\n%s", hits[0].Context)
	}
	if !strings.Contains(hits[0].Context, "- Tom: manager") {
		t.Errorf("context missing following line:\n%s", hits[0].Context)
	}

	if got := Search(doc, "zeppelin", 2); got != nil {
		t.Errorf("expected no hits, got %+v", got)
	}
	if got := Search(doc, "   ", 2); got != nil {
		t.Errorf("blank query should match nothing, got %+v", got)
	}
}

func TestSearchContextClampedAtEdges(t *testing.T) {
	doc := "only line with target"
	hits := Search(doc, "target", 2)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Context != doc {
		t.Errorf("context = %q, want %q", hits[0].Context, doc)
	}
}
