// Package paging slices ordered result sets by client-supplied limit and
// offset, bounded by server-side maxima.
package paging

import (
	"errors"
	"net/url"
	"strconv"

	"celestialbay/internal/shared/shaping"
)

const (
	// DefaultLimit applies when the client sends no limit parameter.
	DefaultLimit = 10
	// MaxLimit caps any requested limit regardless of the client value.
	MaxLimit = 50
)

var (
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)

type Params struct {
	Limit  int
	Offset int
}

// Parse reads limit and offset, applying the default and clamping to
// MaxLimit.
func Parse(query url.Values) (Params, error) {
	params := Params{Limit: DefaultLimit}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Params{}, ErrInvalidLimit
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		params.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Params{}, ErrInvalidOffset
		}
		params.Offset = offset
	}

	return params, nil
}

// Page is one slice of an ordered result set. Count is the total
// unpaginated size; Next and Previous are null at the respective boundary.
type Page struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []shaping.Document `json:"results"`
}

// NewPage builds the envelope for one request. Links reuse the request URL
// so every other query parameter is preserved.
func NewPage(requestURL *url.URL, params Params, count int, results []shaping.Document) Page {
	if results == nil {
		results = []shaping.Document{}
	}
	page := Page{Count: count, Results: results}

	if params.Offset+params.Limit < count {
		page.Next = pageLink(requestURL, params.Limit, params.Offset+params.Limit)
	}
	if params.Offset > 0 {
		previous := params.Offset - params.Limit
		if previous < 0 {
			previous = 0
		}
		page.Previous = pageLink(requestURL, params.Limit, previous)
	}
	return page
}

func pageLink(requestURL *url.URL, limit, offset int) *string {
	link := *requestURL
	query := link.Query()
	query.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	} else {
		query.Del("offset")
	}
	link.RawQuery = query.Encode()
	value := link.String()
	return &value
}
