package pager

import "iter"

// All returns a lazy, forward-only sequence of every page from offset 0 up to
// PageCount()-1, in order. Each call yields a fresh sequence starting at 0.
// The walk is bounded by the page count, never by an emptiness heuristic, so
// every yielded page is identical to what WithOffset would return for the same
// offset.
func (p *Pages) All() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		count := p.PageCount()
		for offset := 0; offset < count; offset++ {
			page, err := p.WithOffset(offset)
			if err != nil {
				return
			}
			if !yield(page) {
				return
			}
		}
	}
}

// Iterator is a pull-style cursor over the pages of a Pages value. A single
// Iterator advances forward only; restarting means obtaining a fresh cursor
// from Iter.
type Iterator struct {
	pages *Pages
	next  int
}

// Iter returns a new cursor positioned at offset 0.
func (p *Pages) Iter() *Iterator {
	return &Iterator{pages: p}
}

// Next returns the page at the cursor and advances it. The second return is
// false once the cursor has moved past the last page.
func (it *Iterator) Next() (Page, bool) {
	page, err := it.pages.WithOffset(it.next)
	if err != nil {
		return Page{}, false
	}
	it.next++
	return page, true
}
