package persistence

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// reportProjection selects the canonical row shape from relation alias r
var reportProjection = "r." + strings.Join(report.Columns, ", r.")

// GormSalesReportRepository implements report.SalesReportRepository using GORM.
// Sources carry their own positional parameters; paging parameters are appended last.
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// Count returns the number of rows the source yields
func (r *GormSalesReportRepository) Count(ctx context.Context, src report.Source) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM "+src.Relation(), src.Args()...).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Page returns one ordered window of the source
func (r *GormSalesReportRepository) Page(ctx context.Context, src report.Source, sort report.SortSpec, page report.PageRequest) ([]report.Row, error) {
	args := append(src.Args(), page.Limit(), page.Offset())
	return r.scanRows(ctx, selectRows(src, sort)+" LIMIT ? OFFSET ?", args)
}

// All returns every row of the source in order; limit <= 0 means unbounded
func (r *GormSalesReportRepository) All(ctx context.Context, src report.Source, sort report.SortSpec, limit int) ([]report.Row, error) {
	if limit <= 0 {
		return r.scanRows(ctx, selectRows(src, sort), src.Args())
	}
	return r.scanRows(ctx, selectRows(src, sort)+" LIMIT ?", append(src.Args(), limit))
}

func selectRows(src report.Source, sort report.SortSpec) string {
	return "SELECT " + reportProjection + " FROM " + src.Relation() + " ORDER BY " + sort.OrderBy()
}

func (r *GormSalesReportRepository) scanRows(ctx context.Context, sql string, args []any) ([]report.Row, error) {
	var scanned []models.ReportRowModel
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&scanned).Error; err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(scanned))
	for i := range scanned {
		rows[i] = scanned[i].ToDomain()
	}
	return rows, nil
}

// facetColumn aggregates the distinct non-empty values of expr over products
func facetColumn(expr, alias string) string {
	return `ARRAY(
			SELECT DISTINCT ` + expr + `
			FROM logistics.products
			WHERE ` + expr + ` IS NOT NULL AND ` + expr + ` <> ''
			ORDER BY 1
		) AS ` + alias
}

var facetsQuery = `SELECT
		ARRAY(
			SELECT DISTINCT value FROM (
				SELECT category AS value FROM logistics.products
				UNION
				SELECT attributes ->> 'category' AS value FROM logistics.products
			) categories
			WHERE value IS NOT NULL AND value <> ''
			ORDER BY value
		) AS categories,
		` + facetColumn("attributes ->> 'brand'", "brands") + `,
		` + facetColumn("attributes ->> 'gender'", "genders") + `,
		` + facetColumn("attributes ->> 'material'", "materials") + `,
		` + facetColumn("attributes ->> 'is_gold'", "is_gold")

type facetsResult struct {
	Categories pq.StringArray `gorm:"column:categories"`
	Brands     pq.StringArray `gorm:"column:brands"`
	Genders    pq.StringArray `gorm:"column:genders"`
	Materials  pq.StringArray `gorm:"column:materials"`
	IsGold     pq.StringArray `gorm:"column:is_gold"`
}

// Facets returns the distinct, sorted values every report filter can take
func (r *GormSalesReportRepository) Facets(ctx context.Context) (*report.Facets, error) {
	var result facetsResult
	if err := r.db.WithContext(ctx).Raw(facetsQuery).Scan(&result).Error; err != nil {
		return nil, err
	}
	return &report.Facets{
		Categories: nonNil(result.Categories),
		Brands:     nonNil(result.Brands),
		Genders:    nonNil(result.Genders),
		Materials:  nonNil(result.Materials),
		IsGold:     nonNil(result.IsGold),
	}, nil
}

func nonNil(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}
	return values
}
