package paging

import (
	"errors"
	"net/url"
	"testing"

	"celestialbay/internal/shared/shaping"
)

func TestParseDefaults(t *testing.T) {
	params, err := Parse(url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if params.Limit != DefaultLimit {
		t.Fatalf("limit = %d, want %d", params.Limit, DefaultLimit)
	}
	if params.Offset != 0 {
		t.Fatalf("offset = %d", params.Offset)
	}
}

func TestParseClampsLimitToMax(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "500")

	params, err := Parse(query)
	if err != nil {
		t.Fatal(err)
	}
	if params.Limit != MaxLimit {
		t.Fatalf("limit = %d, want %d", params.Limit, MaxLimit)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"non-integer limit", "limit", "abc", ErrInvalidLimit},
		{"zero limit", "limit", "0", ErrInvalidLimit},
		{"negative limit", "limit", "-1", ErrInvalidLimit},
		{"non-integer offset", "offset", "abc", ErrInvalidOffset},
		{"negative offset", "offset", "-5", ErrInvalidOffset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := url.Values{}
			query.Set(tc.key, tc.value)
			if _, err := Parse(query); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewPageLinks(t *testing.T) {
	requestURL, _ := url.Parse("http://example.com/galaxies/?limit=2&offset=2&fields=name")
	results := []shaping.Document{{"pk": uint64(3)}, {"pk": uint64(4)}}

	page := NewPage(requestURL, Params{Limit: 2, Offset: 2}, 7, results)

	if page.Count != 7 {
		t.Fatalf("count = %d", page.Count)
	}
	if page.Next == nil || page.Previous == nil {
		t.Fatalf("expected both links, next=%v previous=%v", page.Next, page.Previous)
	}
	next, _ := url.Parse(*page.Next)
	if next.Query().Get("offset") != "4" {
		t.Fatalf("next offset = %q", next.Query().Get("offset"))
	}
	if next.Query().Get("fields") != "name" {
		t.Fatal("next link lost the fields parameter")
	}
	previous, _ := url.Parse(*page.Previous)
	if previous.Query().Get("offset") != "" {
		t.Fatalf("previous offset should be dropped at the boundary, got %q", previous.Query().Get("offset"))
	}
}

func TestNewPageBoundaries(t *testing.T) {
	requestURL, _ := url.Parse("http://example.com/galaxies/")

	page := NewPage(requestURL, Params{Limit: 10, Offset: 0}, 3, nil)

	if page.Next != nil || page.Previous != nil {
		t.Fatalf("expected no links, next=%v previous=%v", page.Next, page.Previous)
	}
	if page.Results == nil {
		t.Fatal("results should serialize as an empty list, not null")
	}
}
