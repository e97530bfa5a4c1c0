package theme

import (
	"strings"
	"testing"
)

func TestStylesKeepText(t *testing.T) {
	for name, s := range map[string]string{
		"label": Label.Render("qtigen"),
		"dim":   Dim.Render("gemini-2.5-flash"),
		"ok":    Ok.Render("done"),
		"warn":  Warn.Render("missing key"),
		"fail":  Fail.Render("provider failed"),
	} {
		if s == "" {
			t.Errorf("%s: empty render", name)
		}
	}
	if !strings.Contains(Ok.Render("done"), "done") {
		t.Error("rendered text should contain the input")
	}
}
