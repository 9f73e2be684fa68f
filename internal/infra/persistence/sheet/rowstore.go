// Package sheet implements the repositories on top of a row-oriented store
// addressed like a spreadsheet: one worksheet per collection, a header row,
// and data rows found by scanning.
package sheet

import (
	"context"
	"errors"
	"strings"
)

// ErrRowNotFound is returned by FindRow when no row has the key in its first column.
var ErrRowNotFound = errors.New("row not found")

// Record is one data row keyed by header name.
type Record map[string]string

// RowStore is the row-oriented collaborator behind the sheet repositories.
// Row and column numbers are 1-based and the header occupies row 1.
type RowStore interface {
	// Header returns the header row of sheet. An empty sheet yields an empty header.
	Header(ctx context.Context, sheet string) ([]string, error)

	// ReadAll returns every data row of sheet as records keyed by header.
	ReadAll(ctx context.Context, sheet string) ([]Record, error)

	// AppendRow appends values after the last row of sheet.
	AppendRow(ctx context.Context, sheet string, values []string) error

	// FindRow returns the row number whose first cell equals key.
	FindRow(ctx context.Context, sheet, key string) (int, error)

	// WriteCell overwrites a single cell.
	WriteCell(ctx context.Context, sheet string, row, col int, value string) error
}

// EnsureHeader writes header to an empty sheet so later appends land below it.
func EnsureHeader(ctx context.Context, store RowStore, sheet string, header []string) error {
	existing, err := store.Header(ctx, sheet)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	return store.AppendRow(ctx, sheet, header)
}

// ColumnName converts a 1-based column number into its A1 letters.
func ColumnName(col int) string {
	var sb strings.Builder
	var letters []byte

	for col > 0 {
		col--
		letters = append(letters, byte('A'+col%26))
		col /= 26
	}
	for i := len(letters) - 1; i >= 0; i-- {
		sb.WriteByte(letters[i])
	}

	return sb.String()
}

func toRecords(rows [][]string) []Record {
	if len(rows) == 0 {
		return []Record{}
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}

	return -1
}
