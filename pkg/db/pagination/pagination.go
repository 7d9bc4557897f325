package pagination

// DefaultPageSize is the number of rows shown per listing page.
const DefaultPageSize = 6

// Pagination carries 1-indexed page state for offset listings.
type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=6" validate:"gte=1,lte=250"`
}

// Normalize clamps the page to 1 and applies the default page size.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the row offset for the current page. Page 1 has offset 0.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Limit returns the row limit for the current page.
func (p Pagination) Limit() int {
	return p.Normalize().PageSize
}

// TotalPages returns the number of pages needed to show count rows.
func TotalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}
