package utils

import "testing"

func TestParsePage(t *testing.T) {
	cases := []struct {
		number, size string
		want         Page
	}{
		{"", "", Page{1, 20}},
		{"3", "10", Page{3, 10}},
		{" 2 ", " 5 ", Page{2, 5}},
		{"0", "0", Page{1, 20}},
		{"-4", "-1", Page{1, 20}},
		{"x", "ten", Page{1, 20}},
		{"1", "1000", Page{1, 100}},
		{"999999999999999999999999", "", Page{1, 20}},
		{"99999999999", "100", Page{MaxPageNumber, 100}},
	}
	for _, tc := range cases {
		if got := ParsePage(tc.number, tc.size, 20, 100); got != tc.want {
			t.Fatalf("ParsePage(%q, %q) = %+v; want %+v", tc.number, tc.size, got, tc.want)
		}
	}
	if got := ParsePage("1", "1000", 20, 0); got.Size != 1000 {
		t.Fatalf("maxSize 0 should not cap, got %+v", got)
	}
}

func TestPage_NormalizeAndOffset(t *testing.T) {
	cases := []struct {
		in     Page
		def    int
		want   Page
		offset int
	}{
		{Page{1, 20}, 20, Page{1, 20}, 0},
		{Page{3, 10}, 20, Page{3, 10}, 20},
		{Page{0, 0}, 15, Page{1, 15}, 0},
		{Page{2, -5}, 20, Page{2, 20}, 20},
		{Page{2_000_000_000, 100}, 20, Page{MaxPageNumber, 100}, (MaxPageNumber - 1) * 100},
	}
	for _, tc := range cases {
		got := tc.in.Normalize(tc.def)
		if got != tc.want || got.Offset() != tc.offset {
			t.Fatalf("%+v.Normalize(%d) = %+v offset %d; want %+v offset %d",
				tc.in, tc.def, got, got.Offset(), tc.want, tc.offset)
		}
	}
}
