package dashboard

import "github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"

// QueryState is the filter plus pagination cursor of one list page.
type QueryState[F any] struct {
	Filter F
	Page   int
	Limit  int
}

func NewQueryState[F any](filter F, limit int) QueryState[F] {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	return QueryState[F]{Filter: filter, Page: 1, Limit: limit}
}

// WithFilter replaces the filter and always returns to page 1.
func (q QueryState[F]) WithFilter(filter F) QueryState[F] {
	q.Filter = filter
	q.Page = 1
	return q
}

func (q QueryState[F]) WithPage(page int) QueryState[F] {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// WithLimit changes the page size and returns to page 1.
func (q QueryState[F]) WithLimit(limit int) QueryState[F] {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	q.Limit = limit
	q.Page = 1
	return q
}

// Filters of the list pages.

type PendaftarFilter struct {
	Status string // pendaftar.Status value or "all"
	Search string
	// NeedsKTA restricts the list to accepted applicants without a card number.
	NeedsKTA bool
}

type UserFilter struct {
	Role   string // user.Role value or "all"
	Search string
}

type AbsensiFilter struct {
	StartDate string
	EndDate   string
	Search    string
}
