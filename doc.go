// Package pager provides index-based pagination arithmetic over collections of
// known total size, without ever touching the collection's elements.
//
// A Pages value is built once from a total length and a per-page limit and then
// answers every boundary question as a pure derivation: how many pages exist,
// which index range a given page covers, and how many items the page actually
// holds once the shorter last page is accounted for.
//
// # Basic Usage
//
// Build a page set and look up a page:
//
//	pages := pager.New(95, 10, nil)
//
//	pages.PageCount() // 10
//
//	page, err := pages.WithOffset(9)
//	if err != nil {
//	    // offset was outside [0, PageCount())
//	}
//	// page.Begin == 90, page.End == 94, page.Count == 5
//
// Page boundaries use an inclusive End: a page covering items 90..94 reports
// Begin 90 and End 94, not 95. Empty pages normalize both boundaries to zero.
//
// # Walking All Pages
//
// All returns a fresh, bounded sequence each call:
//
//	for page := range pages.All() {
//	    fmt.Println(page.Begin, page.End)
//	}
//
// Iter exposes the same walk as an explicit pull-style cursor:
//
//	it := pages.Iter()
//	for page, ok := it.Next(); ok; page, ok = it.Next() {
//	    // ...
//	}
//
// # Rendering
//
// An optional RenderFunc turns each page's (begin, count) window into a string
// artifact, typically an HTML fragment of links:
//
//	pages := pager.New(25, 5, pager.LinkRenderer("https://example.com/items"))
//
//	page, _ := pages.WithOffset(0)
//	// page.Artifact holds anchors for items 0..4
//
// The render function is invoked exactly once per successful lookup and must be
// pure; it receives only the computed window, never the Pages value itself.
//
// # Error Handling
//
// The single error condition is ErrOutOfBound, returned when a requested page
// offset is not within [0, PageCount()). It is an expected, recoverable
// condition:
//
//	page, err := pages.WithOffset(n)
//	if errors.Is(err, pager.ErrOutOfBound) {
//	    page = pager.Page{} // treat as empty
//	}
//
// A zero limit is a legal degenerate configuration: PageCount reports 0 and
// every lookup fails with ErrOutOfBound rather than dividing by zero.
//
// # Slicing Request Windows
//
// For callers that do hold the items, Window applies the same arithmetic to a
// slice and wraps the page in a response-shaped Result:
//
//	result, err := pager.Window(items, pager.Params{Page: 2, Limit: 20})
//	// result.Items, result.Total, result.HasNext
//
// # Concurrency
//
// Pages is immutable after construction and safe to share across goroutines;
// every operation is a pure function of the stored configuration.
package pager
