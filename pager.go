package pager

import (
	"errors"
	"fmt"
)

// ErrOutOfBound is returned when a requested page offset is not within
// [0, PageCount()). It is an expected condition; callers recover with
// errors.Is and substitute an empty Page when the soft behavior is wanted.
var ErrOutOfBound = errors.New("page offset out of bounds")

// Pages holds the fixed pagination configuration: the total item count, the
// per-page limit, and an optional render function. A Pages value is immutable
// after construction and every method is a pure derivation from these fields.
type Pages struct {
	length int
	limit  int
	render RenderFunc
}

// New creates a Pages over a collection of the given total length with the
// given per-page limit. The render function may be nil, in which case every
// page's Artifact is the empty string. Negative inputs clamp to zero; zero
// length and zero limit are legal degenerate configurations resolved at
// lookup time, so construction never fails.
func New(length, limit int, render RenderFunc) *Pages {
	return &Pages{
		length: max(length, 0),
		limit:  max(limit, 0),
		render: render,
	}
}

// Length returns the total number of items being paginated.
func (p *Pages) Length() int {
	return p.length
}

// Limit returns the maximum number of items per page.
func (p *Pages) Limit() int {
	return p.limit
}

// PageCount returns the number of pages, ceil(length/limit). A zero limit
// yields 0 rather than dividing by zero, so a limitless Pages simply has no
// pages and every lookup fails with ErrOutOfBound.
func (p *Pages) PageCount() int {
	if p.limit == 0 {
		return 0
	}
	return (p.length + p.limit - 1) / p.limit
}

// WithOffset computes the page at the given zero-based offset. Offsets outside
// [0, PageCount()) fail with ErrOutOfBound. The returned Page carries the
// inclusive index range [Begin, End] it covers, the actual item count (the last
// page may hold fewer than the limit), and the rendered artifact when a render
// function is configured.
func (p *Pages) WithOffset(offset int) (Page, error) {
	if offset < 0 || offset >= p.PageCount() {
		return Page{}, fmt.Errorf("page %d of %d: %w", offset, p.PageCount(), ErrOutOfBound)
	}

	begin := min(offset*p.limit, p.length)
	rawEnd := min(begin+p.limit, p.length)

	page := Page{
		Offset: offset,
		Count:  rawEnd - begin,
		Begin:  begin,
	}
	if page.Count == 0 {
		// Normalize empty pages to zero boundaries instead of leaving a
		// stale begin offset.
		page.Begin = 0
	} else {
		page.End = rawEnd - 1
	}
	if p.render != nil {
		page.Artifact = p.render(page.Begin, page.Count)
	}
	return page, nil
}
