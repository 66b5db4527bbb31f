package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeSearch
	InputModeEdit
	InputModeConfirmBulkDelete
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode         InputMode
	textInput    textinput.Model
	confirmCount int
	editingID    string
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the prompt line for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeSearch:
		return "Search: " + it.textInput.View()
	case InputModeConfirmBulkDelete:
		return fmt.Sprintf("Delete %d selected members? (y/n): ", it.confirmCount)
	case InputModeEdit:
		return fmt.Sprintf("Editing member %s (Tab switch field, Enter save, Esc done)", it.editingID)
	default:
		return ""
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	case InputModeEdit:
		return "edit"
	case InputModeConfirmBulkDelete:
		return "bulk-delete-confirm"
	default:
		return ""
	}
}
