package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "id",
		OrderDir: "asc",
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Cursor iterates over a streamed query result one record at a time.
// Callers must Close the cursor on every path; Close releases the underlying
// database resources even when iteration stops early.
type Cursor[T any] interface {
	// Next advances to the next record. It returns false when the result set
	// is exhausted or an error occurred; check Err after iteration.
	Next() bool
	// Value returns the record at the current position.
	Value() (*T, error)
	// Err returns the first error encountered during iteration.
	Err() error
	// Close releases the cursor's resources. Safe to call more than once.
	Close() error
}
