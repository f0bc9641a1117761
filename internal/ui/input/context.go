package input

import (
	"checkgrip/internal/ui/logic"
	"checkgrip/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Selection *selection.Service
	Navigator *logic.Navigator
}

// CurrentIndex returns the cursor row
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.Cursor()
}

// TotalItems returns the number of rows including the select all row
func (c *ModelContext) TotalItems() int {
	return c.Selection.RowCount()
}

// IsOnSelectAll reports whether the cursor is on the aggregate control
func (c *ModelContext) IsOnSelectAll() bool {
	return c.Navigator.Cursor() == selection.SelectAllRow
}

// AllSelected returns the aggregate state
func (c *ModelContext) AllSelected() bool {
	return c.Selection.AllSelected()
}

// SelectedCount returns the number of checked options
func (c *ModelContext) SelectedCount() int {
	return c.Selection.GetCount()
}
