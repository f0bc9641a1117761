package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveClamps(t *testing.T) {
	n := NewNavigator(4)

	n.Move("up")
	assert.Equal(t, 0, n.Cursor())

	n.Move("end")
	assert.Equal(t, 3, n.Cursor())

	n.Move("down")
	assert.Equal(t, 3, n.Cursor())

	n.Move("home")
	assert.Equal(t, 0, n.Cursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	n := NewNavigator(10)
	n.SetViewportHeight(3)

	n.Move("down")
	n.Move("down")
	start, end := n.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	n.Move("down")
	assert.Equal(t, 1, n.ViewportOffset())

	n.Move("pagedown")
	assert.Equal(t, 6, n.Cursor())
	assert.Equal(t, 4, n.ViewportOffset())

	n.Move("end")
	start, end = n.VisibleRange()
	assert.Equal(t, 7, start)
	assert.Equal(t, 10, end)

	n.Move("pageup")
	assert.Equal(t, 6, n.Cursor())
	assert.Equal(t, 6, n.ViewportOffset())
}

func TestViewportLargerThanList(t *testing.T) {
	n := NewNavigator(2)
	n.SetViewportHeight(50)
	n.Move("end")

	start, end := n.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestSetViewportHeightMinimum(t *testing.T) {
	n := NewNavigator(5)
	n.SetViewportHeight(0)
	assert.Equal(t, 1, n.ViewportHeight())
}
