package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/qtigen/internal/qti"
	"github.com/abhisek/qtigen/internal/ui/theme"
)

// Status lines go to stderr so stdout carries only the XML. lipgloss strips
// the styling when w is not a terminal.

func printStatus(w io.Writer, format string, args ...any) {
	lipgloss.Fprintln(w, theme.Label.Render("qtigen")+" "+theme.Dim.Render(fmt.Sprintf(format, args...)))
}

func printOK(w io.Writer, format string, args ...any) {
	lipgloss.Fprintln(w, theme.Ok.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, err error) {
	label := "error"
	if kind := qti.KindOf(err); kind != "" {
		label = string(kind)
	}
	lipgloss.Fprintln(w, theme.Fail.Render("✗ "+label)+" "+err.Error())
	if qti.KindOf(err) == qti.KindConfiguration {
		lipgloss.Fprintln(w, theme.Dim.Render("  set QTIGEN_GEMINI_API_KEY or QTIGEN_ANTHROPIC_API_KEY, or put it in .env"))
	}
}
