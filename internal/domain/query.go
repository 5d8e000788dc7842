package domain

import "time"

// SortOrder is the store-level sort direction.
type SortOrder int

const (
	SortAscending  SortOrder = 1
	SortDescending SortOrder = -1
)

// SortableFields is the allow-list of member fields a list request may
// sort by. Anything outside this set is rejected before it can reach
// the store's query layer.
var SortableFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"email":     true,
	"createdAt": true,
	"status":    true,
}

// MemberQuery captures the resolved parameters of one list request.
// It lives for the duration of that request only.
type MemberQuery struct {
	Page      int
	Limit     int
	SortField string
	SortOrder SortOrder
	Search    string
	// CreatedFrom/CreatedTo form an inclusive createdAt range; both are
	// set together or not at all.
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Skip returns the number of documents to skip for the requested page.
func (q MemberQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes the page window for a total count.
func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
