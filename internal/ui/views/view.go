package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"checkgrip/internal/ui/services/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Rows          []selection.Row
	Cursor        int
	VisibleStart  int
	VisibleEnd    int
	Count         int
	Total         int
	StatusMessage string
	HelpView      string // rendered key help, short or full
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	optionRender *OptionRenderer
}

// NewRenderer creates a renderer whose styles follow lr's colour profile
func NewRenderer(lr *lipgloss.Renderer) *Renderer {
	styles := NewStyles(lr)
	return &Renderer{
		styles:       styles,
		optionRender: NewOptionRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	if state.Total == 0 {
		content.WriteString(r.styles.Dim.Render("No options to choose from."))
		content.WriteString("\n")
	}

	content.WriteString(r.renderRows(state))

	status := fmt.Sprintf("%d/%d selected", state.Count, state.Total)
	if state.StatusMessage != "" {
		status = fmt.Sprintf("%s  %s", status, state.StatusMessage)
	}
	content.WriteString(r.styles.Status.Render(status))
	content.WriteString("\n")

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

// RenderReport renders the plain selection summary shown in the pager
func (r *Renderer) RenderReport(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(state.Title))
	b.WriteString("\n")
	for _, row := range state.Rows {
		b.WriteString(r.optionRender.RenderRow(row, false))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d/%d selected\n", state.Count, state.Total))
	return b.String()
}

func (r *Renderer) renderRows(state ViewState) string {
	var b strings.Builder

	if state.VisibleStart > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.VisibleStart)))
		b.WriteString("\n")
	}

	for i := state.VisibleStart; i < state.VisibleEnd && i < len(state.Rows); i++ {
		row := state.Rows[i]
		b.WriteString(r.optionRender.RenderRow(row, i == state.Cursor))
		b.WriteString("\n")
		if row.IsSelectAll && len(state.Rows) > 1 {
			b.WriteString(r.styles.Separator.Render("  " + strings.Repeat("─", 20)))
			b.WriteString("\n")
		}
	}

	if hidden := len(state.Rows) - state.VisibleEnd; hidden > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", hidden)))
		b.WriteString("\n")
	}

	return b.String()
}
