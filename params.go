package pager

const (
	// DefaultLimit is used when Params carries no usable limit.
	DefaultLimit = 256
	// MaxLimit caps the per-page limit a caller may request.
	MaxLimit = 1024
)

// Params holds the pagination parameters of an incoming request.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Result holds one page of items in response shape.
type Result[T any] struct {
	Items     []T  `json:"items"`
	Total     int  `json:"total"`
	Page      int  `json:"page"`
	PageCount int  `json:"page_count"`
	HasNext   bool `json:"has_next"`
}

// NormalizeParams ensures that Page is non-negative and Limit is within an
// acceptable range.
func NormalizeParams(params Params) Params {
	if params.Page < 0 {
		params.Page = 0
	}
	if params.Limit <= 0 || params.Limit > MaxLimit {
		params.Limit = DefaultLimit
	}
	return params
}

// Window applies pagination to a slice the caller already holds, returning the
// requested page of items together with the usual response metadata. The page
// boundaries come from the same arithmetic as Pages.WithOffset, so a page
// outside [0, PageCount()) fails with ErrOutOfBound. Items is never nil.
func Window[T any](items []T, params Params) (*Result[T], error) {
	params = NormalizeParams(params)
	pages := New(len(items), params.Limit, nil)

	// The first page of an empty collection is an empty result, not an error.
	if pages.PageCount() == 0 && params.Page == 0 {
		return &Result[T]{Items: make([]T, 0)}, nil
	}

	page, err := pages.WithOffset(params.Page)
	if err != nil {
		return nil, err
	}

	return &Result[T]{
		Items:     items[page.Begin : page.Begin+page.Count],
		Total:     len(items),
		Page:      page.Offset,
		PageCount: pages.PageCount(),
		HasNext:   page.Offset+1 < pages.PageCount(),
	}, nil
}
