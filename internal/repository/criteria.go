package repository

// DefaultLimit is applied when a caller supplies no page size.
const DefaultLimit = 10

// Pagination is the caller-supplied, non-authoritative paging window.
type Pagination struct {
	Limit  int
	Offset int
}

// normalized clamps the window to sane values.
func (p Pagination) normalized() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset = p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Search is an optional case-insensitive substring filter on a name column.
type Search struct {
	Term string
}
