package members

// PageSize is the fixed number of rows per page
const PageSize = 10

// TotalPages returns ceil(count/pageSize)
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// DisplayTotalPages is TotalPages with a floor of 1, so an empty table reads "Page 1 of 1"
func DisplayTotalPages(count, pageSize int) int {
	if n := TotalPages(count, pageSize); n > 0 {
		return n
	}
	return 1
}

// ClampPage resolves a requested page into [1, totalPages]
func ClampPage(requested, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Paginate returns the slice of ids shown on page (1-based)
func Paginate(ids []string, page, pageSize int) []string {
	if page < 1 || pageSize <= 0 {
		return []string{}
	}
	start := (page - 1) * pageSize
	if start >= len(ids) {
		return []string{}
	}
	end := start + pageSize
	if end > len(ids) {
		end = len(ids)
	}
	return ids[start:end:end]
}
