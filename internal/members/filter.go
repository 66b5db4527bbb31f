package members

import (
	"strings"

	"memberadmin/internal/domain"
)

// ApplyFilter returns the ids of records with any field containing query,
// case-insensitively, in Source Set order. An empty query matches everything.
func ApplyFilter(records []domain.Member, query string) []string {
	ids := make([]string, 0, len(records))
	if query == "" {
		for _, r := range records {
			ids = append(ids, r.ID)
		}
		return ids
	}

	needle := strings.ToLower(query)
	for _, r := range records {
		if Matches(r, needle) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Matches checks whether any field of the record contains the lower-cased needle
func Matches(r domain.Member, needle string) bool {
	if needle == "" {
		return true
	}
	for _, value := range r.Values() {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
