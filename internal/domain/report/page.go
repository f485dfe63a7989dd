package report

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 200

	// maxPage keeps the offset well inside int64
	maxPage = math.MaxInt32
)

// PageRequest is a clamped pagination window
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ParsePage clamps raw query values into a valid window. Input is never
// rejected: missing, non-numeric or non-positive pages become 1, missing or
// non-numeric sizes become DefaultPageSize, and sizes are clamped to [1, MaxPageSize].
// Fractional values are truncated.
func ParsePage(rawPage, rawPageSize string) PageRequest {
	page := DefaultPage
	if v, ok := parseFinite(rawPage); ok && v >= 1 {
		page = int(math.Min(math.Trunc(v), maxPage))
	}

	size := DefaultPageSize
	if v, ok := parseFinite(rawPageSize); ok && v != 0 {
		switch {
		case v < 1:
			size = 1
		case v > MaxPageSize:
			size = MaxPageSize
		default:
			size = int(math.Trunc(v))
		}
	}

	return PageRequest{Page: page, PageSize: size}
}

func parseFinite(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Offset is the number of rows skipped before this page
func (p PageRequest) Offset() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// Limit is the page size
func (p PageRequest) Limit() int {
	return p.PageSize
}
