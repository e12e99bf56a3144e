package domain

import "testing"

func TestParsePaginationDefaultsAndClamping(t *testing.T) {
	cases := []struct {
		page, pageSize string
		wantPage       int
		wantSize       int
	}{
		{"", "", 1, DefaultPageSize},
		{"abc", "xyz", 1, DefaultPageSize},
		{"0", "-5", 1, DefaultPageSize},
		{"3", "50", 3, 50},
		{"2", "9999", 2, MaxPageSize},
	}

	for _, tc := range cases {
		got := ParsePagination(tc.page, tc.pageSize)
		if got.Page != tc.wantPage || got.PageSize != tc.wantSize {
			t.Fatalf("ParsePagination(%q,%q) = %+v, want page=%d size=%d",
				tc.page, tc.pageSize, got, tc.wantPage, tc.wantSize)
		}
	}
}

func TestPageRequestOffset(t *testing.T) {
	pr := PageRequest{Page: 3, PageSize: 10}
	if pr.Offset() != 20 {
		t.Fatalf("offset = %d, want 20", pr.Offset())
	}
}

func TestNewPaginatedTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
	}
	for _, tc := range cases {
		env := NewPaginated([]int{}, tc.total, PageRequest{Page: 1, PageSize: tc.pageSize})
		if env.TotalPages != tc.want {
			t.Fatalf("total=%d size=%d: totalPages=%d, want %d", tc.total, tc.pageSize, env.TotalPages, tc.want)
		}
	}
}

func TestNewPaginatedEnvelopeScenario(t *testing.T) {
	// 15 matching rows, page 2 of size 10 holds the trailing 5.
	data := []string{"k", "l", "m", "n", "o"}
	env := NewPaginated(data, 15, PageRequest{Page: 2, PageSize: 10})

	if len(env.Data) != 5 || env.Total != 15 || env.Page != 2 || env.PageSize != 10 || env.TotalPages != 2 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestNewPaginatedNilDataBecomesEmptySlice(t *testing.T) {
	env := NewPaginated[string](nil, 0, PageRequest{Page: 1, PageSize: 20})
	if env.Data == nil {
		t.Fatalf("data should serialize as [], not null")
	}
}
