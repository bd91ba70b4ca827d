package content

// All is the sentinel filter value meaning "no filter".
const All = "all"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery carries the pagination and search parameters shared by
// every list endpoint.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps pagination to sane bounds. Page is 1-indexed.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

// Offset returns the number of records to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type ArticleQuery struct {
	ListQuery
	Category string
	Featured *bool
}

func (q *ArticleQuery) Normalize() {
	q.ListQuery.Normalize()
	q.Category = normalizeFilter(q.Category)
}

type EventQuery struct {
	ListQuery
	Category string
	Upcoming bool
}

func (q *EventQuery) Normalize() {
	q.ListQuery.Normalize()
	q.Category = normalizeFilter(q.Category)
}

type MediaQuery struct {
	ListQuery
	Type string
}

func (q *MediaQuery) Normalize() {
	q.ListQuery.Normalize()
	q.Type = normalizeFilter(q.Type)
}

type ResultQuery struct {
	ListQuery
	Category string
	Year     int
}

func (q *ResultQuery) Normalize() {
	q.ListQuery.Normalize()
	q.Category = normalizeFilter(q.Category)
}

type SponsorQuery struct {
	ListQuery
	Tier   string
	Active *bool
}

func (q *SponsorQuery) Normalize() {
	q.ListQuery.Normalize()
	q.Tier = normalizeFilter(q.Tier)
}

func normalizeFilter(v string) string {
	if v == All {
		return ""
	}
	return v
}

// Page is the pagination envelope returned alongside every list.
type Page struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPage computes the envelope for a list response:
// Pages == ceil(total/limit).
func NewPage(current, limit int, total int64) Page {
	if limit < 1 {
		limit = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Page{Current: current, Pages: pages, Total: total}
}
