package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memberadmin/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		// Esc only means something while a query is set
		if ctx.Query() == "" {
			return nil, false
		}
		return []types.Action{types.ClearQueryAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PrevPage):
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case key.Matches(msg, m.keys.NextPage):
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.FirstPage):
		return []types.Action{types.PageAction{Direction: "first"}}, true

	case key.Matches(msg, m.keys.LastPage):
		return []types.Action{types.PageAction{Direction: "last"}}, true

	case key.Matches(msg, m.keys.Select):
		if r, ok := ctx.CurrentMember(); ok {
			return []types.Action{types.SelectAction{ID: r.ID}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.SelectAll):
		return []types.Action{types.SelectAllVisibleAction{}}, true

	case key.Matches(msg, m.keys.Edit):
		if _, ok := ctx.CurrentMember(); ok {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Delete):
		if r, ok := ctx.CurrentMember(); ok {
			return []types.Action{types.DeleteAction{ID: r.ID}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.BulkDelete):
		if ctx.HasSelection() && ctx.ConfirmBulkDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmBulkDelete}}, true
		}
		return []types.Action{types.BulkDeleteAction{}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.Query()}}, true

	case key.Matches(msg, m.keys.Detail):
		if _, ok := ctx.CurrentMember(); ok {
			return []types.Action{types.ShowDetailAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
