package cmd

import (
	"fmt"
	"io"

	"modlist-builder/feature/builder"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleID    = lipgloss.NewStyle().Foreground(colorCyan).Width(12).Align(lipgloss.Right)
)

// statusStyles maps an entry status to its marker and color.
var statusStyles = map[builder.EntryStatus]struct {
	icon  string
	style lipgloss.Style
}{
	builder.StatusInstalled: {"✓", lipgloss.NewStyle().Foreground(colorGreen)},
	builder.StatusRenamed:   {"!", lipgloss.NewStyle().Foreground(colorYellow)},
	builder.StatusMissing:   {"✗", lipgloss.NewStyle().Foreground(colorRed)},
	builder.StatusInvalid:   {"✗", lipgloss.NewStyle().Foreground(colorRed).Bold(true)},
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+value)
}

func printEntry(w io.Writer, e builder.InspectedEntry) {
	s := statusStyles[e.Status]
	line := s.style.Render(s.icon) + " " + styleID.Render(fmt.Sprint(e.ID)) + "  " + e.DisplayName
	if e.Status == builder.StatusRenamed || e.Status == builder.StatusInvalid {
		line += styleDim.Render(fmt.Sprintf("  (Steam.json: %q)", e.ManifestName))
	}
	fmt.Fprintln(w, line)
}
