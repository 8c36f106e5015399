package pager

// Page describes one contiguous slice of the index universe [0, length). It is
// an immutable snapshot: page values are computed on demand and carry no
// reference back to the Pages that produced them.
//
// End is inclusive: a non-empty page covering items 4..5 has Begin 4 and
// End 5. Empty pages hold zero for both boundaries.
type Page struct {
	Offset   int    `json:"offset"`
	Count    int    `json:"count"`
	Begin    int    `json:"begin"`
	End      int    `json:"end"`
	Artifact string `json:"artifact,omitempty"`
}

// IsEmpty reports whether the page holds no items.
func (p Page) IsEmpty() bool {
	return p.Count == 0
}

// Equal reports whether two pages are structurally equal.
func (p Page) Equal(other Page) bool {
	return p == other
}
