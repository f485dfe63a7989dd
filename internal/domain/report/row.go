package report

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Columns is the canonical report row shape, in output order. Both source
// strategies expose exactly these columns and the CSV header uses them verbatim.
var Columns = []string{
	"product_id",
	"sku",
	"name",
	"category",
	"list_price",
	"currency",
	"image_url",
	"available",
	"score",
}

// Row is one sales report line. Money and score keep the store's precision.
type Row struct {
	ProductID int64               `json:"product_id"`
	SKU       string              `json:"sku"`
	Name      string              `json:"name"`
	Category  *string             `json:"category"`
	ListPrice decimal.NullDecimal `json:"list_price"`
	Currency  *string             `json:"currency"`
	ImageURL  *string             `json:"image_url"`
	Available int64               `json:"available"`
	Score     decimal.NullDecimal `json:"score"`
}

// Page is one slice of the report plus the total number of matching rows
type Page struct {
	Rows  []Row
	Total int64
}

// fields stringifies the row in Columns order; nulls become nil
func (r Row) fields() []*string {
	return []*string{
		strPtr(strconv.FormatInt(r.ProductID, 10)),
		strPtr(r.SKU),
		strPtr(r.Name),
		r.Category,
		nullDecimalString(r.ListPrice),
		r.Currency,
		r.ImageURL,
		strPtr(strconv.FormatInt(r.Available, 10)),
		nullDecimalString(r.Score),
	}
}

func strPtr(s string) *string { return &s }

func nullDecimalString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	return strPtr(d.Decimal.String())
}
