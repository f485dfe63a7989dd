package report

import (
	"io"
	"strings"
)

// CSV export metadata
const (
	CSVContentType = "text/csv; charset=utf-8"
	CSVFilename    = "sales-report.csv"
)

// escapeCSV quotes a field that contains a comma, quote, CR or LF, doubling inner quotes
func escapeCSV(value *string) string {
	if value == nil {
		return ""
	}
	if !strings.ContainsAny(*value, ",\"\r\n") {
		return *value
	}
	return `"` + strings.ReplaceAll(*value, `"`, `""`) + `"`
}

// WriteCSV writes the header and rows joined by "\n" without a trailing newline
func WriteCSV(w io.Writer, rows []Row) error {
	header := make([]*string, len(Columns))
	for i := range Columns {
		header[i] = &Columns[i]
	}
	if err := writeCSVLine(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := writeCSVLine(w, row.fields()); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVLine(w io.Writer, fields []*string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, escapeCSV(f)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCSV renders rows as a CSV document
func EncodeCSV(rows []Row) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = WriteCSV(&b, rows)
	return b.String()
}
