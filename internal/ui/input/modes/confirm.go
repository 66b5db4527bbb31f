package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"memberadmin/internal/ui/input/types"
)

type ConfirmMode struct {
	count int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "bulk-delete-confirm"
}

// Count is the number of members the prompt is asking about
func (m *ConfirmMode) Count() int {
	return m.count
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.count = ctx.SelectedCount()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.count = 0
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		return []types.Action{
			types.BulkDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while the prompt is open
	return nil, true
}
