// Package pagination normalizes raw list-query parameters and assembles
// the page envelope shared by the blogs, posts and comments list endpoints.
package pagination

import "strconv"

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query holds the raw, untrusted query parameters of a list request
type Query struct {
	PageNumber     string
	PageSize       string
	SortBy         string
	SortDirection  string
	SearchNameTerm string
}

// Pagination is the normalized query shape every list endpoint works with
type Pagination struct {
	PageNumber     int
	PageSize       int
	SortBy         string
	SortDesc       bool
	SearchNameTerm string
}

// Normalize converts raw query parameters into a canonical Pagination.
// Malformed or out-of-range values degrade to defaults, never to errors:
// non-positive page numbers become 1, non-positive page sizes become 10,
// a sort field outside the allow-list falls back to defaultSort, and any
// direction other than ascending becomes descending.
func Normalize(q Query, allowedSortFields []string, defaultSort string) Pagination {
	pageNumber, _ := strconv.Atoi(q.PageNumber)
	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}

	pageSize, _ := strconv.Atoi(q.PageSize)
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	sortBy := defaultSort
	for _, field := range allowedSortFields {
		if q.SortBy == field {
			sortBy = q.SortBy
			break
		}
	}

	sortDesc := q.SortDirection != SortAsc && q.SortDirection != "ascending"

	return Pagination{
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		SortBy:         sortBy,
		SortDesc:       sortDesc,
		SearchNameTerm: q.SearchNameTerm,
	}
}

// Skip returns the number of items preceding the requested page
func (p Pagination) Skip() int64 {
	return int64(p.PageNumber-1) * int64(p.PageSize)
}

// Limit returns the page size as an int64 for store-level limit clauses
func (p Pagination) Limit() int64 {
	return int64(p.PageSize)
}

// SortOrder returns the MongoDB sort order value for the chosen direction
func (p Pagination) SortOrder() int {
	if p.SortDesc {
		return -1
	}
	return 1
}

// OrderClause returns a SQL ORDER BY expression for the chosen sort.
// SortBy is always a member of an allow-list, never raw user input.
func (p Pagination) OrderClause() string {
	if p.SortDesc {
		return p.SortBy + " DESC"
	}
	return p.SortBy + " ASC"
}
