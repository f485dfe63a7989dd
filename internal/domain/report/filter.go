package report

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/retailops/backend/internal/domain/shared"
)

// FilterKey names a catalog attribute the report can be narrowed by
type FilterKey string

const (
	FilterCategory FilterKey = "category"
	FilterBrand    FilterKey = "brand"
	FilterGender   FilterKey = "gender"
	FilterMaterial FilterKey = "material"
	FilterIsGold   FilterKey = "is_gold"
)

// FilterKeys lists the recognized keys in predicate order
var FilterKeys = []FilterKey{FilterCategory, FilterBrand, FilterGender, FilterMaterial, FilterIsGold}

// ErrInvalidFiltersJSON is returned when string-encoded filters cannot be decoded
var ErrInvalidFiltersJSON = shared.NewValidationError("filters must be valid JSON")

// FilterSet holds the optional report filters. An empty value means the
// filter is absent and produces no predicate.
type FilterSet struct {
	Category string `json:"category,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Material string `json:"material,omitempty"`
	IsGold   string `json:"is_gold,omitempty"`
}

// Get returns the value for key, or "" when absent
func (f FilterSet) Get(key FilterKey) string {
	switch key {
	case FilterCategory:
		return f.Category
	case FilterBrand:
		return f.Brand
	case FilterGender:
		return f.Gender
	case FilterMaterial:
		return f.Material
	case FilterIsGold:
		return f.IsGold
	}
	return ""
}

func (f *FilterSet) set(key FilterKey, value string) {
	switch key {
	case FilterCategory:
		f.Category = value
	case FilterBrand:
		f.Brand = value
	case FilterGender:
		f.Gender = value
	case FilterMaterial:
		f.Material = value
	case FilterIsGold:
		f.IsGold = value
	}
}

// IsEmpty reports whether no filter is present
func (f FilterSet) IsEmpty() bool {
	return f == FilterSet{}
}

// JSON encodes the present filters as an object; the empty set encodes as {}.
func (f FilterSet) JSON() string {
	// FilterSet only holds strings, Marshal cannot fail
	b, _ := json.Marshal(f)
	return string(b)
}

// ParseFilters normalizes raw filter input.
//
// nil and "" yield an empty set. Structured maps are taken as-is with unknown
// keys ignored. Strings are decoded as JSON: a decoded object is accepted, any
// other JSON value yields an empty set, and undecodable text yields
// ErrInvalidFiltersJSON.
func ParseFilters(raw any) (FilterSet, error) {
	switch v := raw.(type) {
	case nil:
		return FilterSet{}, nil
	case string:
		if v == "" {
			return FilterSet{}, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return FilterSet{}, ErrInvalidFiltersJSON
		}
		obj, ok := decoded.(map[string]any)
		if !ok {
			return FilterSet{}, nil
		}
		return filtersFromMap(obj), nil
	case map[string]any:
		return filtersFromMap(v), nil
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return filtersFromMap(m), nil
	case FilterSet:
		return v, nil
	default:
		return FilterSet{}, nil
	}
}

func filtersFromMap(m map[string]any) FilterSet {
	var fs FilterSet
	for _, key := range FilterKeys {
		value, ok := m[string(key)]
		if !ok && key == FilterIsGold {
			value, ok = m["isGold"]
		}
		if !ok {
			continue
		}
		if s, ok := scalarString(value); ok {
			fs.set(key, s)
		}
	}
	return fs
}

// scalarString stringifies JSON scalars. Objects, arrays and null are not filter values.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, strings.TrimSpace(t) != ""
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}
