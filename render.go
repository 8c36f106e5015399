package pager

import (
	"fmt"
	"strings"
)

// RenderFunc turns a page's (begin, count) window into a string artifact,
// typically an HTML fragment linking to items begin..begin+count-1. It must be
// pure: it is invoked synchronously, exactly once per successful lookup, and
// receives only the computed window.
type RenderFunc func(begin, count int) string

// LinkRenderer returns a RenderFunc that renders one anchor per item in the
// window, each pointing at baseURL/<index> and followed by a line break:
//
//	<a href="https://example.com/items/0"></a></br>...
func LinkRenderer(baseURL string) RenderFunc {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return func(begin, count int) string {
		var b strings.Builder
		for i := begin; i < begin+count; i++ {
			fmt.Fprintf(&b, "<a href=%q></a></br>", fmt.Sprintf("%s/%d", baseURL, i))
		}
		return b.String()
	}
}
