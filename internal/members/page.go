package members

import "memberadmin/internal/domain"

// Row is one rendered record
type Row struct {
	ID       string
	Name     string
	Email    string
	Member   domain.Member
	Selected bool
	Editing  bool
}

// Page is everything the rendering surface needs for the current page
type Page struct {
	Rows               []Row
	Page               int
	TotalPages         int
	HasPrev            bool
	HasNext            bool
	Query              string
	FilteredCount      int
	TotalCount         int
	SelectedCount      int
	AllVisibleSelected bool
	CanBulkDelete      bool
}

// View builds the current page
func (s *State) View() Page {
	visible := Paginate(s.filtered, s.page, PageSize)

	// duplicate ids render the first matching record
	byID := make(map[string]domain.Member, len(visible))
	wanted := make(map[string]bool, len(visible))
	for _, id := range visible {
		wanted[id] = true
	}
	for _, r := range s.records {
		if wanted[r.ID] {
			if _, ok := byID[r.ID]; !ok {
				byID[r.ID] = r
			}
		}
	}

	rows := make([]Row, 0, len(visible))
	for _, id := range visible {
		m := byID[id]
		rows = append(rows, Row{
			ID:       id,
			Name:     m.Name,
			Email:    m.Email,
			Member:   m.Clone(),
			Selected: s.selected[id],
			Editing:  s.editing[id],
		})
	}

	return Page{
		Rows:               rows,
		Page:               s.page,
		TotalPages:         s.TotalPages(),
		HasPrev:            s.HasPrev(),
		HasNext:            s.HasNext(),
		Query:              s.query,
		FilteredCount:      len(s.filtered),
		TotalCount:         len(s.records),
		SelectedCount:      len(s.selected),
		AllVisibleSelected: allSelected(visible, s.selected),
		CanBulkDelete:      s.CanBulkDelete(),
	}
}
