package pager

import "testing"

func TestAll(t *testing.T) {
	pages := New(6, 2, nil)
	want := []Page{
		{Offset: 0, Count: 2, Begin: 0, End: 1},
		{Offset: 1, Count: 2, Begin: 2, End: 3},
		{Offset: 2, Count: 2, Begin: 4, End: 5},
	}

	var got []Page
	for page := range pages.All() {
		got = append(got, page)
	}
	if len(got) != len(want) {
		t.Fatalf("walk yielded %d pages, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("page %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAllMatchesWithOffset(t *testing.T) {
	pages := New(95, 10, LinkRenderer("www.test.com"))
	offset := 0
	for page := range pages.All() {
		direct, err := pages.WithOffset(offset)
		if err != nil {
			t.Fatalf("WithOffset(%d) error: %v", offset, err)
		}
		if !page.Equal(direct) {
			t.Errorf("yielded page %d = %+v, lookup = %+v", offset, page, direct)
		}
		offset++
	}
	if offset != pages.PageCount() {
		t.Errorf("walk yielded %d pages, want %d", offset, pages.PageCount())
	}
}

func TestAllRestartsFromZero(t *testing.T) {
	pages := New(5, 2, nil)
	for walk := 0; walk < 2; walk++ {
		var offsets []int
		for page := range pages.All() {
			offsets = append(offsets, page.Offset)
		}
		if len(offsets) != 3 || offsets[0] != 0 {
			t.Fatalf("walk %d visited offsets %v, want [0 1 2]", walk, offsets)
		}
	}
}

func TestAllEarlyBreak(t *testing.T) {
	pages := New(100, 5, nil)
	seen := 0
	for range pages.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("saw %d pages after break, want 2", seen)
	}
}

func TestAllDegenerate(t *testing.T) {
	for _, pages := range []*Pages{New(0, 5, nil), New(5, 0, nil)} {
		for page := range pages.All() {
			t.Errorf("length=%d limit=%d: unexpected page %+v", pages.Length(), pages.Limit(), page)
		}
	}
}

func TestIterator(t *testing.T) {
	pages := New(5, 2, nil)
	it := pages.Iter()

	var got []Page
	for page, ok := it.Next(); ok; page, ok = it.Next() {
		got = append(got, page)
	}
	if len(got) != 3 {
		t.Fatalf("cursor yielded %d pages, want 3", len(got))
	}
	if got[2].Count != 1 || got[2].Begin != 4 || got[2].End != 4 {
		t.Errorf("last page = %+v, want count 1 covering 4..4", got[2])
	}

	// Exhausted cursors stay exhausted.
	if page, ok := it.Next(); ok {
		t.Errorf("Next() after exhaustion returned %+v", page)
	}

	// A fresh cursor restarts at offset 0.
	if page, ok := pages.Iter().Next(); !ok || page.Offset != 0 {
		t.Errorf("fresh cursor began at %+v", page)
	}
}
