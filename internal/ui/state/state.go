package state

import (
	"memberadmin/internal/domain"
	"memberadmin/internal/members"
)

// AppState contains all the application state
type AppState struct {
	// Member data and the derived table view
	Members *members.State
	Source  string // where the members were loaded from

	// Cursor is the row index within the current page
	Cursor int

	// Load state
	Loading bool
	LoadErr error

	// UI state
	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup
	ShowInfo         bool
	InfoContent      string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Members: members.NewState(),
		Loading: true,
	}
}

// CurrentID returns the id of the row under the cursor
func (s *AppState) CurrentID() (string, bool) {
	visible := s.Members.VisibleIDs()
	if s.Cursor < 0 || s.Cursor >= len(visible) {
		return "", false
	}
	return visible[s.Cursor], true
}

// CurrentMember returns the record under the cursor
func (s *AppState) CurrentMember() (domain.Member, bool) {
	id, ok := s.CurrentID()
	if !ok {
		return domain.Member{}, false
	}
	return s.Members.Get(id)
}

// MoveCursor moves the cursor by delta, staying within the page
func (s *AppState) MoveCursor(delta int) {
	s.Cursor += delta
	s.ClampCursor()
}

// ClampCursor keeps the cursor on a visible row
func (s *AppState) ClampCursor() {
	n := len(s.Members.VisibleIDs())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
