package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Cursor      lipgloss.Style
	Checked     lipgloss.Style
	Unchecked   lipgloss.Style
	SelectAll   lipgloss.Style
	Separator   lipgloss.Style
	SelectionBg lipgloss.Style
	Label       lipgloss.Style
}

// NewStyles creates the styles for a renderer. Colour support is detected
// from the renderer's writer, so it must be the one the program draws on.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: r.NewStyle().Faint(true),
		Status: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:        r.NewStyle().Faint(true),
		Main:        r.NewStyle().Padding(1, 2),
		Scroll:      r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:      r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Checked:     r.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Unchecked:   r.NewStyle().Foreground(lipgloss.Color("241")), // gray
		SelectAll:   r.NewStyle().Bold(true),
		Separator:   r.NewStyle().Foreground(lipgloss.Color("238")),
		SelectionBg: r.NewStyle().Background(lipgloss.Color("238")),
		Label:       r.NewStyle(),
	}
}
