package utils

import (
	"net/http/httptest"
	"testing"
)

func TestQueryInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url  string
		def  int
		want int
	}{
		{"/x", 30, 30},
		{"/x?limit=5", 30, 5},
		{"/x?limit=abc", 30, 30},
		{"/x?limit=-2", 30, 30},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		if got := QueryInt(r, "limit", tc.def); got != tc.want {
			t.Errorf("QueryInt(%q) = %d, want %d", tc.url, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("short", 500); got != "short" {
		t.Errorf("short string changed: %q", got)
	}
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	got := Truncate(string(long), 500)
	if len(got) != 503 || got[500:] != "..." {
		t.Errorf("unexpected truncation: len=%d", len(got))
	}
}
