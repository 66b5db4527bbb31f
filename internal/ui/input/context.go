package input

import (
	"memberadmin/internal/config"
	"memberadmin/internal/domain"
	"memberadmin/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Config *config.Config
}

// CurrentMember returns the record under the cursor
func (c *ModelContext) CurrentMember() (domain.Member, bool) {
	return c.State.CurrentMember()
}

// HasSelection returns true if any members are selected
func (c *ModelContext) HasSelection() bool {
	return c.State.Members.SelectedCount() > 0
}

// SelectedCount returns the number of selected members
func (c *ModelContext) SelectedCount() int {
	return c.State.Members.SelectedCount()
}

// Query returns the active search query
func (c *ModelContext) Query() string {
	return c.State.Members.Query()
}

// ConfirmBulkDelete reports whether bulk delete asks first
func (c *ModelContext) ConfirmBulkDelete() bool {
	return c.Config != nil && c.Config.UISettings.ConfirmBulkDelete
}
