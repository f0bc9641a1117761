package logic

// Navigator handles cursor movement and viewport management over a flat
// list of rows
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator(total int) *Navigator {
	return &Navigator{
		total:          total,
		viewportHeight: 20, // until the first WindowSizeMsg
	}
}

// Cursor returns the current row
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of rows that fit on screen
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight resizes the viewport, keeping the cursor visible
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureCursorVisible()
}

// VisibleRange returns the half-open row range currently on screen
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.total {
		end = n.total
	}
	return n.viewportOffset, end
}

// Move applies a navigation direction
func (n *Navigator) Move(direction string) {
	switch direction {
	case "up":
		n.SetCursor(n.cursor - 1)
	case "down":
		n.SetCursor(n.cursor + 1)
	case "pageup":
		n.SetCursor(n.cursor - n.viewportHeight)
	case "pagedown":
		n.SetCursor(n.cursor + n.viewportHeight)
	case "home":
		n.SetCursor(0)
	case "end":
		n.SetCursor(n.total - 1)
	}
}

// SetCursor moves the cursor, clamped to the list
func (n *Navigator) SetCursor(index int) {
	if index > n.total-1 {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.cursor = index
	n.ensureCursorVisible()
}

func (n *Navigator) ensureCursorVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}

	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
