package pagination

const (
	// DefaultPage is used when a page number is not provided.
	DefaultPage = 1
	// DefaultPerPage is the standard page size when a limit is not provided.
	DefaultPerPage = 20
	// MaxPerPage caps how many rows any paginated query can request.
	MaxPerPage = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page    int
	PerPage int
}

// Normalize enforces the configured defaults and maximum page size.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit returns the normalized page size.
func (p Params) Limit() int {
	return p.Normalize().PerPage
}

// Result wraps one page of rows with the paging metadata callers echo back.
type Result[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalCount int64 `json:"total_count"`
}

// NewResult assembles a page from normalized params, rows, and a total count.
func NewResult[T any](params Params, items []T, total int64) Result[T] {
	n := params.Normalize()
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:      items,
		Page:       n.Page,
		PerPage:    n.PerPage,
		TotalCount: total,
	}
}
