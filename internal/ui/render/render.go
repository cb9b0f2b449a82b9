// Package render formats harness reports for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zboralski/tarsier/internal/jni"
	"github.com/zboralski/tarsier/internal/plan"
	"github.com/zboralski/tarsier/internal/trace"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC800"))
	classStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	sigStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8000"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#646464"))
)

// Report is everything one harness run produced.
type Report struct {
	Title       string
	Results     []plan.Result
	Diagnostics []string
	Session     *trace.Session
}

// Render formats the report.
func (r Report) Render() string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "tarsier"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteByte('\n')

	for _, res := range r.Results {
		b.WriteString("  ")
		b.WriteString(classStyle.Render(res.Class))
		b.WriteByte('.')
		b.WriteString(res.Method)
		b.WriteString(sigStyle.Render(res.Sig))
		b.WriteString(" = ")
		b.WriteString(valueStyle.Render(res.Value.String()))
		b.WriteByte('\n')
	}

	for _, d := range r.Diagnostics {
		b.WriteString("  ")
		b.WriteString(missStyle.Render(d))
		b.WriteByte('\n')
	}

	b.WriteString(dimStyle.Render(r.summary()))
	b.WriteByte('\n')
	return b.String()
}

func (r Report) summary() string {
	events := 0
	session := ""
	if r.Session != nil {
		events = r.Session.Count()
		session = r.Session.ID
	}
	s := fmt.Sprintf("%d calls, %d diagnostics, %d events",
		len(r.Results), len(r.Diagnostics), events)
	if session != "" {
		s += "  session " + session
	}
	return s
}

// Classes formats the bound classes of a registry.
func Classes(reg *jni.Registry) string {
	var b strings.Builder
	for _, c := range reg.Classes() {
		b.WriteString(classStyle.Render(c.Name))
		b.WriteByte('\n')
		for _, m := range c.Methods() {
			b.WriteString("  ")
			b.WriteString(m.Name)
			b.WriteString(sigStyle.Render(m.Sig))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
