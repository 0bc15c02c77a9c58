// Package pagination converts page/page_size query parameters into
// limit/offset windows and back into response metadata.
package pagination

// Pagination represents pagination parameters.
type Pagination struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Default values.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// New creates pagination with default values.
func New() *Pagination {
	return &Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Normalize replaces missing or out-of-range values with defaults.
func (p *Pagination) Normalize() *Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	p.PageSize = p.Limit()
	return p
}

// Offset returns the offset for store queries.
func (p *Pagination) Offset() int {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	return (page - 1) * p.Limit()
}

// Limit returns the limit for store queries.
func (p *Pagination) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return p.PageSize
}

// TotalPages calculates the total number of pages.
func (p *Pagination) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	size := int64(p.Limit())
	return int((total + size - 1) / size)
}

// PageInfo represents pagination info in API responses.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Info returns pagination info for API responses.
func (p *Pagination) Info(total int64) PageInfo {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	return PageInfo{
		Page:       page,
		PageSize:   p.Limit(),
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}
