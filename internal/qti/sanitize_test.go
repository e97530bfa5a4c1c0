package qti

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"xml fence", "```xml\n<a/>\n```", "<a/>"},
		{"bare fence", "```\n<a/>\n```", "<a/>"},
		{"surrounding whitespace", "  \n```xml<a/>```  \n", "<a/>"},
		{"opener only", "```xml\n<a/>", "<a/>"},
		{"closer only", "<a/>\n```", "<a/>"},
		{"clean", "<assessmentItem/>", "<assessmentItem/>"},
		{"empty", "", ""},
		{"whitespace", " \t\n ", ""},
		{"fence only", "```", ""},
		{"inner fence kept", "```xml\n<a>```b```</a>\n```", "<a>```b```</a>"},
		{"uppercase tag not stripped as xml", "```XML\n<a/>\n```", "XML\n<a/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Idempotence holds for zero or one fence pair; stacked fences lose one
// layer per call (see TestSanitize_StackedFences).
func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"```xml\n<assessmentItem identifier=\"q1\"/>\n```",
		"<assessmentItem/>",
		"  plain text  ",
		"```\n<a/>```",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSanitize_StackedFences(t *testing.T) {
	// One opener and one closer per pass.
	got := Sanitize("```xml\n```xml\n<a/>\n```\n```")
	if got != "```xml\n<a/>\n```" {
		t.Errorf("got %q", got)
	}
}
