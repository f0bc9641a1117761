package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"checkgrip/internal/eventbus"
	"checkgrip/internal/ui/services/selection"
	"checkgrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Selection *selection.Service
	Bus       eventbus.EventBus
}

// ToggleRowCommand toggles the option or select all control at a row
type ToggleRowCommand struct {
	ctx *CommandContext
	row int
}

// NewToggleRowCommand creates a new toggle command
func NewToggleRowCommand(ctx *CommandContext, row int) *ToggleRowCommand {
	return &ToggleRowCommand{ctx: ctx, row: row}
}

// Execute flips the row
func (c *ToggleRowCommand) Execute() tea.Cmd {
	c.ctx.Selection.ToggleAt(c.row)
	c.ctx.State.StatusMessage = ""
	return nil
}

// ToggleAllCommand drives the select all control
type ToggleAllCommand struct {
	ctx *CommandContext
}

// NewToggleAllCommand creates a new toggle all command
func NewToggleAllCommand(ctx *CommandContext) *ToggleAllCommand {
	return &ToggleAllCommand{ctx: ctx}
}

// Execute sets every option to the negated aggregate
func (c *ToggleAllCommand) Execute() tea.Cmd {
	c.ctx.Selection.ToggleAll()
	if c.ctx.Selection.AllSelected() {
		c.ctx.State.StatusMessage = fmt.Sprintf("Selected all %d options", c.ctx.Selection.Total())
	} else {
		c.ctx.State.StatusMessage = "Cleared selection"
	}
	return nil
}

// FinishCommand ends the session
type FinishCommand struct {
	ctx      *CommandContext
	accepted bool
	aborted  bool
}

// NewFinishCommand creates a command that ends the program
func NewFinishCommand(ctx *CommandContext, accepted, aborted bool) *FinishCommand {
	return &FinishCommand{ctx: ctx, accepted: accepted, aborted: aborted}
}

// Execute records the outcome and quits
func (c *FinishCommand) Execute() tea.Cmd {
	c.ctx.State.Finish(c.accepted, c.aborted)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SelectionDoneEvent{
			Accepted: c.accepted,
			Selected: c.ctx.Selection.GetSelected(),
		})
	}
	return tea.Quit
}
