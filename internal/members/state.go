package members

import (
	"errors"
	"fmt"

	"memberadmin/internal/domain"
)

// ErrUnsupportedField is returned when an edit targets a field that is not mutable
var ErrUnsupportedField = errors.New("field is not editable")

// State owns the Source Set and every piece of view state derived from it.
// It is not safe for concurrent use; the UI event loop is its only writer.
type State struct {
	records []domain.Member

	query    string
	page     int
	filtered []string

	selected map[string]bool
	editing  map[string]bool
}

// NewState creates an empty view-model
func NewState() *State {
	s := &State{
		page:     1,
		selected: make(map[string]bool),
		editing:  make(map[string]bool),
	}
	s.refresh()
	return s
}

// Load replaces the Source Set verbatim
func (s *State) Load(records []domain.Member) {
	s.records = make([]domain.Member, len(records))
	for i, r := range records {
		s.records[i] = r.Clone()
	}

	present := s.idSet()
	for id := range s.selected {
		if !present[id] {
			delete(s.selected, id)
		}
	}
	for id := range s.editing {
		if !present[id] {
			delete(s.editing, id)
		}
	}
	s.refresh()
}

// Records returns a copy of the Source Set in order
func (s *State) Records() []domain.Member {
	out := make([]domain.Member, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the Source Set size
func (s *State) Len() int {
	return len(s.records)
}

// Get returns the first record with the given id
func (s *State) Get(id string) (domain.Member, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return domain.Member{}, false
}

// Has reports whether id is in the Source Set
func (s *State) Has(id string) bool {
	for _, r := range s.records {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Query returns the current search query
func (s *State) Query() string {
	return s.query
}

// SetQuery changes the query and resets to page 1. Returns false if unchanged.
func (s *State) SetQuery(query string) bool {
	if query == s.query {
		return false
	}
	s.query = query
	s.page = 1
	s.refresh()
	return true
}

// FilteredIDs returns the ids matching the current query
func (s *State) FilteredIDs() []string {
	return append([]string(nil), s.filtered...)
}

// VisibleIDs returns the ids on the current page
func (s *State) VisibleIDs() []string {
	return append([]string(nil), Paginate(s.filtered, s.page, PageSize)...)
}

// Page returns the current 1-based page
func (s *State) Page() int {
	return s.page
}

// TotalPages returns the page count, at least 1
func (s *State) TotalPages() int {
	return DisplayTotalPages(len(s.filtered), PageSize)
}

// ChangePage moves to the requested page, clamped into range
func (s *State) ChangePage(requested int) int {
	s.page = ClampPage(requested, s.TotalPages())
	return s.page
}

// NextPage advances one page if possible
func (s *State) NextPage() int {
	return s.ChangePage(s.page + 1)
}

// PrevPage goes back one page if possible
func (s *State) PrevPage() int {
	return s.ChangePage(s.page - 1)
}

// HasNext reports whether a later page exists
func (s *State) HasNext() bool {
	return s.page < s.TotalPages()
}

// HasPrev reports whether an earlier page exists
func (s *State) HasPrev() bool {
	return s.page > 1
}

// ToggleRow flips selection of id. Returns the new selection state.
func (s *State) ToggleRow(id string) bool {
	if !s.Has(id) {
		return false
	}
	if s.selected[id] {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = true
	return true
}

// ToggleAllVisible selects every visible row, or clears them if all
// are already selected. Rows on other pages are never touched.
// Returns true if the visible rows ended up selected.
func (s *State) ToggleAllVisible() bool {
	visible := Paginate(s.filtered, s.page, PageSize)
	if allSelected(visible, s.selected) {
		for _, id := range visible {
			delete(s.selected, id)
		}
		return false
	}
	for _, id := range visible {
		s.selected[id] = true
	}
	return len(visible) > 0
}

// AllVisibleSelected drives the header checkbox
func (s *State) AllVisibleSelected() bool {
	return allSelected(Paginate(s.filtered, s.page, PageSize), s.selected)
}

func allSelected(ids []string, selected map[string]bool) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !selected[id] {
			return false
		}
	}
	return true
}

// IsSelected reports whether id is selected
func (s *State) IsSelected(id string) bool {
	return s.selected[id]
}

// SelectedIDs returns the selected ids in Source Set order
func (s *State) SelectedIDs() []string {
	var ids []string
	seen := make(map[string]bool, len(s.selected))
	for _, r := range s.records {
		if s.selected[r.ID] && !seen[r.ID] {
			seen[r.ID] = true
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// SelectedCount returns the number of selected ids
func (s *State) SelectedCount() int {
	return len(s.selected)
}

// CanBulkDelete reports whether the bulk delete action is enabled
func (s *State) CanBulkDelete() bool {
	return len(s.selected) > 0
}

// ToggleEdit flips edit mode for id. Returns the new edit state.
func (s *State) ToggleEdit(id string) bool {
	if !s.Has(id) {
		return false
	}
	if s.editing[id] {
		delete(s.editing, id)
		return false
	}
	s.editing[id] = true
	return true
}

// IsEditing reports whether id is in edit mode
func (s *State) IsEditing(id string) bool {
	return s.editing[id]
}

// EditingIDs returns the ids in edit mode in Source Set order
func (s *State) EditingIDs() []string {
	var ids []string
	for _, r := range s.records {
		if s.editing[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// UpdateField writes a single mutable field in place without leaving
// edit mode. Returns false if no record has the id.
func (s *State) UpdateField(id, field, value string) (bool, error) {
	if field != domain.FieldName && field != domain.FieldEmail {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedField, field)
	}

	found := false
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		found = true
		switch field {
		case domain.FieldName:
			s.records[i].Name = value
		case domain.FieldEmail:
			s.records[i].Email = value
		}
	}
	if found {
		s.refresh()
	}
	return found, nil
}

// ApplyEdit replaces name and email of id in place and leaves edit mode.
// Returns false if no record has the id.
func (s *State) ApplyEdit(id, name, email string) bool {
	found := false
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Name = name
			s.records[i].Email = email
			found = true
		}
	}
	delete(s.editing, id)
	if found {
		s.refresh()
	}
	return found
}

// DeleteRecord removes id from the Source Set, the selection and edit mode
func (s *State) DeleteRecord(id string) bool {
	kept := s.records[:0]
	removed := false
	for _, r := range s.records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	delete(s.selected, id)
	delete(s.editing, id)
	if removed {
		s.refresh()
	}
	return removed
}

// BulkDelete removes every selected record in one step and clears the
// selection. Returns the removed ids, nil when nothing was selected.
func (s *State) BulkDelete() []string {
	if len(s.selected) == 0 {
		return nil
	}
	removedIDs := s.SelectedIDs()

	kept := make([]domain.Member, 0, len(s.records))
	for _, r := range s.records {
		if s.selected[r.ID] {
			delete(s.editing, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	s.selected = make(map[string]bool)
	s.refresh()
	return removedIDs
}

// refresh recomputes the derived view after any mutation
func (s *State) refresh() {
	s.filtered = ApplyFilter(s.records, s.query)
	s.page = ClampPage(s.page, s.TotalPages())
}

func (s *State) idSet() map[string]bool {
	ids := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		ids[r.ID] = true
	}
	return ids
}
