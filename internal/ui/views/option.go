package views

import (
	"strings"

	"checkgrip/internal/ui/services/selection"
)

// OptionRenderer renders a single checklist row
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{styles: styles}
}

// RenderRow renders one row; isCursor highlights the row under the cursor
func (r *OptionRenderer) RenderRow(row selection.Row, isCursor bool) string {
	var parts []string

	if isCursor {
		parts = append(parts, r.styles.Cursor.Render(">"))
	} else {
		parts = append(parts, " ")
	}

	box := "[ ]"
	boxStyle := r.styles.Unchecked
	if row.Checked {
		box = "[x]"
		boxStyle = r.styles.Checked
	}
	parts = append(parts, boxStyle.Render(box))

	labelStyle := r.styles.Label
	if row.IsSelectAll {
		labelStyle = r.styles.SelectAll
	}
	if isCursor {
		labelStyle = labelStyle.Inherit(r.styles.SelectionBg)
	}
	parts = append(parts, labelStyle.Render(row.Label))

	return strings.Join(parts, " ")
}
