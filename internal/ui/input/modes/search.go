package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"memberadmin/internal/ui/input/types"
)

// SearchMode filters live: every keystroke becomes an UpdateTextAction
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
