package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"memberadmin/internal/domain"
	"memberadmin/internal/eventbus"
	"memberadmin/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// ToggleSelectionCommand toggles a member's selection
type ToggleSelectionCommand struct {
	ctx *CommandContext
	id  string
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, id string) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{ctx: ctx, id: id}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	c.ctx.State.Members.ToggleRow(c.id)
	return nil
}

// ToggleAllVisibleCommand selects or deselects every row on the page
type ToggleAllVisibleCommand struct {
	ctx *CommandContext
}

// NewToggleAllVisibleCommand creates a new toggle all command
func NewToggleAllVisibleCommand(ctx *CommandContext) *ToggleAllVisibleCommand {
	return &ToggleAllVisibleCommand{ctx: ctx}
}

// Execute toggles the visible rows
func (c *ToggleAllVisibleCommand) Execute() tea.Cmd {
	c.ctx.State.Members.ToggleAllVisible()
	return nil
}

// SetQueryCommand changes the search query
type SetQueryCommand struct {
	ctx   *CommandContext
	query string
}

// NewSetQueryCommand creates a new set query command
func NewSetQueryCommand(ctx *CommandContext, query string) *SetQueryCommand {
	return &SetQueryCommand{ctx: ctx, query: query}
}

// Execute applies the query. The page resets only when the query changed.
func (c *SetQueryCommand) Execute() tea.Cmd {
	m := c.ctx.State.Members
	if !m.SetQuery(c.query) {
		return nil
	}
	c.ctx.State.Cursor = 0
	c.ctx.publish(domain.QueryChangedEvent{Query: m.Query(), Matches: len(m.FilteredIDs())})
	return nil
}

// ChangePageCommand moves to a page, clamping out of range requests
type ChangePageCommand struct {
	ctx  *CommandContext
	page int
}

// NewChangePageCommand creates a new change page command
func NewChangePageCommand(ctx *CommandContext, page int) *ChangePageCommand {
	return &ChangePageCommand{ctx: ctx, page: page}
}

// Execute changes the page
func (c *ChangePageCommand) Execute() tea.Cmd {
	m := c.ctx.State.Members
	before := m.Page()
	if m.ChangePage(c.page) != before {
		c.ctx.State.Cursor = 0
	}
	return nil
}

// BeginEditCommand puts a member into edit mode
type BeginEditCommand struct {
	ctx *CommandContext
	id  string
}

// NewBeginEditCommand creates a new begin edit command
func NewBeginEditCommand(ctx *CommandContext, id string) *BeginEditCommand {
	return &BeginEditCommand{ctx: ctx, id: id}
}

// Execute turns edit mode on for the member
func (c *BeginEditCommand) Execute() tea.Cmd {
	m := c.ctx.State.Members
	if !m.IsEditing(c.id) {
		m.ToggleEdit(c.id)
	}
	return nil
}

// UpdateFieldCommand writes one field while the member stays in edit mode
type UpdateFieldCommand struct {
	ctx   *CommandContext
	id    string
	field string
	value string
}

// NewUpdateFieldCommand creates a new update field command
func NewUpdateFieldCommand(ctx *CommandContext, id, field, value string) *UpdateFieldCommand {
	return &UpdateFieldCommand{ctx: ctx, id: id, field: field, value: value}
}

// Execute writes the field
func (c *UpdateFieldCommand) Execute() tea.Cmd {
	if _, err := c.ctx.State.Members.UpdateField(c.id, c.field, c.value); err != nil {
		c.ctx.State.StatusMessage = err.Error()
		c.ctx.publish(domain.ErrorEvent{Message: "update field", Err: err})
	}
	c.ctx.State.ClampCursor()
	return nil
}

// ApplyEditCommand commits name and email and leaves edit mode
type ApplyEditCommand struct {
	ctx   *CommandContext
	id    string
	name  string
	email string
}

// NewApplyEditCommand creates a new apply edit command
func NewApplyEditCommand(ctx *CommandContext, id, name, email string) *ApplyEditCommand {
	return &ApplyEditCommand{ctx: ctx, id: id, name: name, email: email}
}

// Execute applies the edit
func (c *ApplyEditCommand) Execute() tea.Cmd {
	if !c.ctx.State.Members.ApplyEdit(c.id, c.name, c.email) {
		return nil
	}
	c.ctx.State.ClampCursor()
	c.ctx.State.StatusMessage = fmt.Sprintf("Updated member %s", c.id)
	c.ctx.publish(domain.MemberUpdatedEvent{ID: c.id, Name: c.name, Email: c.email, Committed: true})
	return nil
}

// EndEditCommand leaves edit mode. Values written by keystrokes stay.
type EndEditCommand struct {
	ctx *CommandContext
	id  string
}

// NewEndEditCommand creates a new end edit command
func NewEndEditCommand(ctx *CommandContext, id string) *EndEditCommand {
	return &EndEditCommand{ctx: ctx, id: id}
}

// Execute turns edit mode off for the member
func (c *EndEditCommand) Execute() tea.Cmd {
	m := c.ctx.State.Members
	if !m.IsEditing(c.id) {
		return nil
	}
	m.ToggleEdit(c.id)
	if r, ok := m.Get(c.id); ok {
		c.ctx.publish(domain.MemberUpdatedEvent{ID: c.id, Name: r.Name, Email: r.Email})
	}
	return nil
}

// DeleteCommand removes a single member
type DeleteCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, id string) *DeleteCommand {
	return &DeleteCommand{ctx: ctx, id: id}
}

// Execute deletes the member
func (c *DeleteCommand) Execute() tea.Cmd {
	if !c.ctx.State.Members.DeleteRecord(c.id) {
		return nil
	}
	c.ctx.State.ClampCursor()
	c.ctx.State.StatusMessage = fmt.Sprintf("Deleted member %s", c.id)
	c.ctx.publish(domain.MembersDeletedEvent{IDs: []string{c.id}})
	return nil
}

// BulkDeleteCommand removes every selected member
type BulkDeleteCommand struct {
	ctx *CommandContext
}

// NewBulkDeleteCommand creates a new bulk delete command
func NewBulkDeleteCommand(ctx *CommandContext) *BulkDeleteCommand {
	return &BulkDeleteCommand{ctx: ctx}
}

// Execute deletes the selection
func (c *BulkDeleteCommand) Execute() tea.Cmd {
	ids := c.ctx.State.Members.BulkDelete()
	if len(ids) == 0 {
		c.ctx.State.StatusMessage = "No members selected"
		return nil
	}
	c.ctx.State.ClampCursor()
	c.ctx.State.StatusMessage = fmt.Sprintf("Deleted %d members", len(ids))
	c.ctx.publish(domain.MembersDeletedEvent{IDs: ids, Bulk: true})
	return nil
}
