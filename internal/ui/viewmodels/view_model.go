package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"memberadmin/internal/config"
	"memberadmin/internal/ui/state"
	"memberadmin/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinnerView      string
	helpContent      string
	inputTransformer *InputTransformer

	editName  string
	editEmail string
	editField string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings for the short help line
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(view string) {
	vm.spinnerView = view
}

// SetHelpContent sets the popup help text
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetConfirmCount sets the count shown by the bulk delete prompt
func (vm *ViewModel) SetConfirmCount(n int) {
	vm.inputTransformer.confirmCount = n
}

// SetEditInputs sets the rendered edit inputs for the member being edited
func (vm *ViewModel) SetEditInputs(id, name, email, focusedField string) {
	vm.inputTransformer.editingID = id
	vm.editName = name
	vm.editEmail = email
	vm.editField = focusedField
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Page:          vm.state.Members.View(),
		Cursor:        vm.state.Cursor,
		ShowIDColumn:  vm.config.UISettings.ShowIDColumn,
		Loading:       vm.state.Loading,
		SpinnerView:   vm.spinnerView,
		Source:        vm.state.Source,
		EditingID:     vm.inputTransformer.editingID,
		EditName:      vm.editName,
		EditEmail:     vm.editEmail,
		EditField:     vm.editField,
		StatusMessage: vm.state.StatusMessage,
		TextInput:     vm.inputTransformer.GetInputText(),
		InputMode:     vm.inputTransformer.GetInputModeString(),
		ShowHelp:      vm.state.ShowHelp,
		HelpContent:   vm.helpContent,
		ShowInfo:      vm.state.ShowInfo,
		InfoContent:   vm.state.InfoContent,
	}
	if vm.state.LoadErr != nil {
		vs.LoadError = vm.state.LoadErr.Error()
	}
	if vm.keys != nil {
		vs.ShortHelp = vm.help.ShortHelpView(vm.keys.ShortHelp())
	}
	return vs
}
