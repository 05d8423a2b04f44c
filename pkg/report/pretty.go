package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/leapstack-labs/bashate/pkg/core"
	"github.com/leapstack-labs/bashate/pkg/lint"
)

// Styles holds the lipgloss styles used by the pretty format and the rule
// catalogue.
type Styles struct {
	Path    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds styles bound to w. Without color every style renders
// plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.EnvColorProfile())
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Path:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Severity renders a severity padded to a fixed width.
func (s *Styles) Severity(sev core.Severity) string {
	label := sev.String()
	switch sev {
	case core.SeverityError:
		return pad(s.Error.Render(label), label, 7)
	case core.SeverityWarning:
		return pad(s.Warning.Render(label), label, 7)
	default:
		return pad(s.Muted.Render(label), label, 7)
	}
}

// pad right-pads a styled string using the width of its plain text, since
// escape sequences would throw off fmt's width verbs.
func pad(styled, plain string, width int) string {
	if n := width - len([]rune(plain)); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}

// ColorEnabled reports whether w is a terminal that should get color.
// NO_COLOR turns color off.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return !termenv.EnvNoColor()
}

func writePretty(w io.Writer, diags []lint.Diagnostic, opts Options) error {
	st := NewStyles(w, opts.Color)
	var b strings.Builder

	if len(diags) == 0 {
		b.WriteString(st.Success.Render(fmt.Sprintf("No style issues found in %d file(s)", opts.Files)))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, d := range diags {
		if i == 0 || d.File != diags[i-1].File {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(st.Path.Render(d.File))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			pad(st.Muted.Render(d.Pos.String()), d.Pos.String(), 7),
			st.Severity(d.Severity),
			st.Bold.Render(d.RuleID),
			d.Message,
		)
	}

	s := Summarize(diags, opts.Files)
	parts := []string{fmt.Sprintf("%d issues", len(diags))}
	if s.Errors > 0 {
		parts = append(parts, st.Error.Render(fmt.Sprintf("%d errors", s.Errors)))
	}
	if s.Warnings > 0 {
		parts = append(parts, st.Warning.Render(fmt.Sprintf("%d warnings", s.Warnings)))
	}
	fmt.Fprintf(&b, "\nSummary: %s in %d files\n", strings.Join(parts, ", "), s.Files)

	_, err := io.WriteString(w, b.String())
	return err
}
