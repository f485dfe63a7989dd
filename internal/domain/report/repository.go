package report

import "context"

// Facets lists the distinct values each filter can take
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Genders    []string `json:"genders"`
	Materials  []string `json:"materials"`
	IsGold     []string `json:"is_gold"`
}

// SalesReportRepository reads report rows from a Source
type SalesReportRepository interface {
	// Count returns the number of rows the source yields
	Count(ctx context.Context, src Source) (int64, error)
	// Page returns one ordered window of the source
	Page(ctx context.Context, src Source, sort SortSpec, page PageRequest) ([]Row, error)
	// All returns every row of the source in order; limit <= 0 means unbounded
	All(ctx context.Context, src Source, sort SortSpec, limit int) ([]Row, error)
	// Facets returns the distinct filter values of the active catalog
	Facets(ctx context.Context) (*Facets, error)
}

// PresetRepository persists saved report presets
type PresetRepository interface {
	List(ctx context.Context) ([]Preset, error)
	Create(ctx context.Context, preset *Preset) error
	// Delete removes the preset and returns it, or ErrPresetNotFound
	Delete(ctx context.Context, id int64) (*Preset, error)
}

// FacetCache stores computed facets between requests
type FacetCache interface {
	Get(ctx context.Context) (*Facets, bool)
	Set(ctx context.Context, facets *Facets)
	Invalidate(ctx context.Context)
}
