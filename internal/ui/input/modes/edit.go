package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memberadmin/internal/domain"
	"memberadmin/internal/ui/input/types"
)

// EditMode edits the name and email of one member. Tab switches the
// focused field.
type EditMode struct {
	id      string
	inputs  []textinput.Model
	focused int
}

var editFields = []string{domain.FieldName, domain.FieldEmail}

func NewEditMode() *EditMode {
	m := &EditMode{inputs: make([]textinput.Model, len(editFields))}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		m.inputs[i] = ti
	}
	m.inputs[0].Placeholder = "name"
	m.inputs[1].Placeholder = "email"
	return m
}

func (m *EditMode) Name() string {
	return "edit"
}

// ID returns the member being edited, empty outside edit mode
func (m *EditMode) ID() string {
	return m.id
}

// FocusedField returns the field receiving keystrokes
func (m *EditMode) FocusedField() string {
	return editFields[m.focused]
}

// Inputs returns the name and email inputs
func (m *EditMode) Inputs() (name, email *textinput.Model) {
	return &m.inputs[0], &m.inputs[1]
}

// Values returns the current name and email
func (m *EditMode) Values() (name, email string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

func (m *EditMode) Enter(ctx types.Context) []types.Action {
	r, ok := ctx.CurrentMember()
	if !ok {
		return nil
	}
	m.id = r.ID
	m.inputs[0].SetValue(r.Name)
	m.inputs[1].SetValue(r.Email)
	m.focus(0)
	return []types.Action{types.BeginEditAction{ID: r.ID}}
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Reset()
	}
	m.id = ""
	m.focused = 0
	return nil
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab", "shift+tab", "up", "down":
		m.focus((m.focused + 1) % len(m.inputs))
		return nil, true
	case "enter":
		name, email := m.Values()
		return []types.Action{
			types.ApplyEditAction{ID: m.id, Name: name, Email: email},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc":
		return []types.Action{
			types.EndEditAction{ID: m.id},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}

// UpdateInput feeds a keystroke to the focused input and reports the new
// field value
func (m *EditMode) UpdateInput(msg tea.Msg) ([]types.Action, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	if _, isKey := msg.(tea.KeyMsg); !isKey || m.id == "" {
		return nil, cmd
	}
	return []types.Action{types.UpdateFieldAction{
		ID:    m.id,
		Field: editFields[m.focused],
		Value: m.inputs[m.focused].Value(),
	}}, cmd
}

func (m *EditMode) focus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focused = i
	m.inputs[i].Focus()
	m.inputs[i].CursorEnd()
}
