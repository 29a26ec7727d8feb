package pagination

// Page is the envelope returned by every paginated endpoint
type Page[T any] struct {
	PagesCount int   `json:"pages_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	Items      []T   `json:"items"`
}

// NewPage assembles a page envelope from the normalized query, the total
// number of matching items and the fetched page of items. A nil items
// slice is replaced with an empty one so it marshals as [] rather than null.
func NewPage[T any](pg Pagination, totalCount int64, items []T) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		PagesCount: pagesCount(totalCount, pg.PageSize),
		Page:       pg.PageNumber,
		PageSize:   pg.PageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}

func pagesCount(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
