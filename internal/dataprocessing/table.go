package dataprocessing

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	apperrors "boxcli/internal/errors"
)

// RawTable is one loaded source: an ordered sequence of rows with named,
// loosely typed fields. Column labels are already normalized. Immutable once
// loaded.
type RawTable struct {
	Path    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// newRawTable builds a table and its column index from normalized labels.
func newRawTable(path string, columns []string, rows [][]string) *RawTable {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := index[c]; !exists {
			index[c] = i
		}
	}
	return &RawTable{Path: path, Columns: columns, Rows: rows, index: index}
}

// HasColumn reports whether the table carries the given normalized column.
func (t *RawTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ResolveColumn returns the first of the given aliases present in the table.
// Alias order is the acceptance order, resolved once at load time.
func (t *RawTable) ResolveColumn(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		if t.HasColumn(alias) {
			return alias, true
		}
	}
	return "", false
}

// Value returns the cell at the given row for a normalized column name.
// Missing columns and ragged short rows yield the empty string.
func (t *RawTable) Value(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	return len(t.Rows)
}

// ReadCSVTable reads a delimited source file with a header row and returns a
// RawTable with normalized column labels. A missing file or malformed CSV
// structure is a hard input error naming the path.
func ReadCSVTable(path string) (*RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewInputError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewInputError(path, err)
	}
	// Strip a UTF-8 BOM left by spreadsheet tools.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewInputError(path, err)
		}
		rows = append(rows, row)
	}

	return newRawTable(path, NormalizeColumns(header), rows), nil
}
