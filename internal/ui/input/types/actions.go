package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction moves between pages
type PageAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a PageAction) Type() string { return "page" }

// Selection actions
type SelectAction struct {
	ID string
}

func (a SelectAction) Type() string { return "select" }

type SelectAllVisibleAction struct{}

func (a SelectAllVisibleAction) Type() string { return "select_all_visible" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Edit actions
type BeginEditAction struct {
	ID string
}

func (a BeginEditAction) Type() string { return "begin_edit" }

type UpdateFieldAction struct {
	ID    string
	Field string
	Value string
}

func (a UpdateFieldAction) Type() string { return "update_field" }

type ApplyEditAction struct {
	ID    string
	Name  string
	Email string
}

func (a ApplyEditAction) Type() string { return "apply_edit" }

type EndEditAction struct {
	ID string
}

func (a EndEditAction) Type() string { return "end_edit" }

// Delete actions
type DeleteAction struct {
	ID string
}

func (a DeleteAction) Type() string { return "delete" }

type BulkDeleteAction struct{}

func (a BulkDeleteAction) Type() string { return "bulk_delete" }

// Other actions
type ShowDetailAction struct{}

func (a ShowDetailAction) Type() string { return "show_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
