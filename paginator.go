package gridview

// Paginator provides the rows of the current page
// of a paginated data source.
type Paginator interface {
	// Read returns the rows of the current page.
	Read() []any
	// TotalItems returns the number of rows of all pages.
	TotalItems() int
	// CurrentPage returns the zero based index of the current page.
	CurrentPage() int
	// PageSize returns the maximum number of rows per page.
	PageSize() int
	// PageCount returns the number of pages.
	PageCount() int
	// Offset returns the index of the first row
	// of the current page within all rows.
	Offset() int
	// IsRequired returns if pagination controls are needed
	// because there is more than one page.
	IsRequired() bool
}

// KeyedPaginator is a Paginator that provides
// keys for the rows of the current page.
// Rows of paginators that don't implement it
// are keyed by their index within the page.
type KeyedPaginator interface {
	Paginator

	// Key returns the key of the row at index within the current page.
	Key(index int) any
}

// Sorter is implemented by paginators that
// expose the sort criteria of their data source.
type Sorter interface {
	// Sort returns the sort criteria or nil.
	Sort() *Sort
}

// DefaultPageSize is used by OffsetPaginator if no valid page size is set.
const DefaultPageSize = 10

var (
	_ KeyedPaginator = new(OffsetPaginator)
	_ Sorter         = new(OffsetPaginator)
)

// OffsetPaginator is an in-memory Paginator over a slice of rows.
//
// It only slices the rows into pages,
// sorting and filtering has to be done by the caller.
// All With* methods return a modified copy.
type OffsetPaginator struct {
	rows        []any
	pageSize    int
	currentPage int
	sort        *Sort
	keyFunc     func(row any, index int) any
}

// NewOffsetPaginator returns an OffsetPaginator for rows
// with a page size of DefaultPageSize showing the first page.
func NewOffsetPaginator[T any](rows []T) *OffsetPaginator {
	p := &OffsetPaginator{
		rows:     make([]any, len(rows)),
		pageSize: DefaultPageSize,
	}
	for i, row := range rows {
		p.rows[i] = row
	}
	return p
}

func (p *OffsetPaginator) clone() *OffsetPaginator {
	c := new(OffsetPaginator)
	*c = *p
	return c
}

// WithPageSize returns a copy with the passed page size.
// Values smaller than one result in DefaultPageSize.
func (p *OffsetPaginator) WithPageSize(pageSize int) *OffsetPaginator {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	mod := p.clone()
	mod.pageSize = pageSize
	return mod
}

// WithCurrentPage returns a copy showing the zero based page.
func (p *OffsetPaginator) WithCurrentPage(page int) *OffsetPaginator {
	mod := p.clone()
	mod.currentPage = page
	return mod
}

// WithSort returns a copy exposing the passed sort criteria.
func (p *OffsetPaginator) WithSort(sort *Sort) *OffsetPaginator {
	mod := p.clone()
	mod.sort = sort
	return mod
}

// WithKeyFunc returns a copy using keyFunc to get
// the key of a row at index within the current page.
func (p *OffsetPaginator) WithKeyFunc(keyFunc func(row any, index int) any) *OffsetPaginator {
	mod := p.clone()
	mod.keyFunc = keyFunc
	return mod
}

// WithKeyAttribute returns a copy using the row attribute
// as key falling back to the row index if the attribute does not exist.
func (p *OffsetPaginator) WithKeyAttribute(attribute string) *OffsetPaginator {
	return p.WithKeyFunc(func(row any, index int) any {
		if key, ok := AttributeValue(row, attribute); ok {
			return key
		}
		return index
	})
}

func (p *OffsetPaginator) Read() []any {
	offset := p.Offset()
	end := min(offset+p.pageSize, len(p.rows))
	if offset >= end {
		return nil
	}
	return append([]any(nil), p.rows[offset:end]...)
}

func (p *OffsetPaginator) Key(index int) any {
	if p.keyFunc == nil {
		return index
	}
	return p.keyFunc(p.rows[p.Offset()+index], index)
}

func (p *OffsetPaginator) TotalItems() int { return len(p.rows) }
func (p *OffsetPaginator) PageSize() int   { return p.pageSize }
func (p *OffsetPaginator) Sort() *Sort     { return p.sort }
func (p *OffsetPaginator) IsRequired() bool {
	return p.PageCount() > 1
}

func (p *OffsetPaginator) PageCount() int {
	return max(1, (len(p.rows)+p.pageSize-1)/p.pageSize)
}

func (p *OffsetPaginator) CurrentPage() int {
	return min(max(p.currentPage, 0), p.PageCount()-1)
}

func (p *OffsetPaginator) Offset() int {
	return p.CurrentPage() * p.pageSize
}
