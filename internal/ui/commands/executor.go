package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"checkgrip/internal/eventbus"
	"checkgrip/internal/ui/services/selection"
	"checkgrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, sel *selection.Service, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Selection: sel,
			Bus:       bus,
		},
	}
}

// ExecuteToggle creates and executes a toggle command for a row
func (e *Executor) ExecuteToggle(row int) tea.Cmd {
	return NewToggleRowCommand(e.ctx, row).Execute()
}

// ExecuteToggleAll creates and executes a toggle all command
func (e *Executor) ExecuteToggleAll() tea.Cmd {
	return NewToggleAllCommand(e.ctx).Execute()
}

// ExecuteAccept ends the session keeping the selection
func (e *Executor) ExecuteAccept() tea.Cmd {
	return NewFinishCommand(e.ctx, true, false).Execute()
}

// ExecuteQuit ends the session without accepting
func (e *Executor) ExecuteQuit(force bool) tea.Cmd {
	return NewFinishCommand(e.ctx, false, force).Execute()
}
