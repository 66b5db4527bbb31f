package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"memberadmin/internal/eventbus"
	"memberadmin/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(id string) tea.Cmd {
	return NewToggleSelectionCommand(e.ctx, id).Execute()
}

// ExecuteToggleAllVisible creates and executes a toggle all command
func (e *Executor) ExecuteToggleAllVisible() tea.Cmd {
	return NewToggleAllVisibleCommand(e.ctx).Execute()
}

// ExecuteSetQuery creates and executes a set query command
func (e *Executor) ExecuteSetQuery(query string) tea.Cmd {
	return NewSetQueryCommand(e.ctx, query).Execute()
}

// ExecuteChangePage creates and executes a change page command
func (e *Executor) ExecuteChangePage(page int) tea.Cmd {
	return NewChangePageCommand(e.ctx, page).Execute()
}

// ExecuteBeginEdit creates and executes a begin edit command
func (e *Executor) ExecuteBeginEdit(id string) tea.Cmd {
	return NewBeginEditCommand(e.ctx, id).Execute()
}

// ExecuteUpdateField creates and executes an update field command
func (e *Executor) ExecuteUpdateField(id, field, value string) tea.Cmd {
	return NewUpdateFieldCommand(e.ctx, id, field, value).Execute()
}

// ExecuteApplyEdit creates and executes an apply edit command
func (e *Executor) ExecuteApplyEdit(id, name, email string) tea.Cmd {
	return NewApplyEditCommand(e.ctx, id, name, email).Execute()
}

// ExecuteEndEdit creates and executes an end edit command
func (e *Executor) ExecuteEndEdit(id string) tea.Cmd {
	return NewEndEditCommand(e.ctx, id).Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(id string) tea.Cmd {
	return NewDeleteCommand(e.ctx, id).Execute()
}

// ExecuteBulkDelete creates and executes a bulk delete command
func (e *Executor) ExecuteBulkDelete() tea.Cmd {
	return NewBulkDeleteCommand(e.ctx).Execute()
}
