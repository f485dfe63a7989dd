package report

import (
	"fmt"
	"strings"
)

// SortField is a whitelisted report ordering key
type SortField string

const (
	SortScore     SortField = "score"
	SortAvailable SortField = "available"
	SortPrice     SortField = "price"
	SortName      SortField = "name"
)

// SortDirection is asc or desc
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is a resolved ordering
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders by recommendation score, best first
var DefaultSort = SortSpec{Field: SortScore, Direction: SortDesc}

// ParseSort resolves a "<field>:<direction>" token. Unknown fields fall back to
// score; a missing or invalid direction takes the field's default. Segments
// after the second colon are ignored.
func ParseSort(token string) SortSpec {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(token)), ":")

	field := SortField(strings.TrimSpace(parts[0]))
	switch field {
	case SortScore, SortAvailable, SortPrice, SortName:
	default:
		field = SortScore
	}

	var dir SortDirection
	if len(parts) > 1 {
		dir = SortDirection(strings.TrimSpace(parts[1]))
	}
	if dir != SortAsc && dir != SortDesc {
		dir = defaultDirection(field)
	}
	return SortSpec{Field: field, Direction: dir}
}

func defaultDirection(field SortField) SortDirection {
	if field == SortPrice || field == SortName {
		return SortAsc
	}
	return SortDesc
}

// String renders the canonical token, e.g. "price:asc"
func (s SortSpec) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// OrderBy renders the ORDER BY expression over relation alias r, including tie-breaks.
// Only whitelisted identifiers reach the SQL text.
func (s SortSpec) OrderBy() string {
	dir := "DESC"
	if s.Direction == SortAsc {
		dir = "ASC"
	}
	switch s.Field {
	case SortAvailable:
		return fmt.Sprintf("r.available %s, r.score DESC, r.name ASC", dir)
	case SortPrice:
		return fmt.Sprintf("r.list_price %s NULLS LAST, r.score DESC, r.name ASC", dir)
	case SortName:
		return fmt.Sprintf("r.name %s, r.score DESC", dir)
	default:
		return fmt.Sprintf("r.score %s, r.available DESC, r.list_price ASC NULLS LAST", dir)
	}
}
