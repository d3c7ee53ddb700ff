package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetAccessor gives header- and cell-level access to one tabular
// sheet. Purely mechanical: no domain validation happens here.
type SheetAccessor struct {
	Name             string
	rows             [][]string
	headers          map[string]int
	duplicateHeaders []string
}

// NewSheetAccessor reads the sheet's used range once. The first row is
// the header row; blank header cells are skipped. Row numbers are
// 1-based to match what users see in their spreadsheet program.
func NewSheetAccessor(f *excelize.File, sheet string) (*SheetAccessor, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	acc := &SheetAccessor{
		Name:    sheet,
		rows:    rows,
		headers: make(map[string]int),
	}

	if len(rows) > 0 {
		for col, cell := range rows[0] {
			name := strings.TrimSpace(cell)
			if name == "" {
				continue
			}
			if _, seen := acc.headers[name]; seen {
				acc.duplicateHeaders = append(acc.duplicateHeaders, name)
				continue
			}
			acc.headers[name] = col
		}
	}

	return acc, nil
}

// Headers returns the header name to column index map.
func (a *SheetAccessor) Headers() map[string]int {
	return a.headers
}

// DuplicateHeaders lists header names that appeared more than once in
// the header row. The validator treats these as a structural error.
func (a *SheetAccessor) DuplicateHeaders() []string {
	return a.duplicateHeaders
}

// HasHeader reports whether the named header is present.
func (a *SheetAccessor) HasHeader(name string) bool {
	_, ok := a.headers[name]
	return ok
}

// CellText returns the trimmed text of the cell at the 1-based row and
// 0-based column, or "" when the cell lies outside the used range.
func (a *SheetAccessor) CellText(row, col int) string {
	if row < 1 || row > len(a.rows) || col < 0 {
		return ""
	}
	cells := a.rows[row-1]
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// HeaderText is CellText addressed by header name.
func (a *SheetAccessor) HeaderText(row int, header string) string {
	col, ok := a.headers[header]
	if !ok {
		return ""
	}
	return a.CellText(row, col)
}

// RowCount returns the number of rows in the used range, including the
// header row.
func (a *SheetAccessor) RowCount() int {
	return len(a.rows)
}

// ColumnCount returns the width of the header row.
func (a *SheetAccessor) ColumnCount() int {
	if len(a.rows) == 0 {
		return 0
	}
	return len(a.rows[0])
}

// DataRowCount returns the number of rows after the header row. A sheet
// with fewer than 2 rows has zero data rows.
func (a *SheetAccessor) DataRowCount() int {
	if len(a.rows) < 2 {
		return 0
	}
	return len(a.rows) - 1
}

// RowIsBlank reports whether every cell in the 1-based row is blank.
func (a *SheetAccessor) RowIsBlank(row int) bool {
	if row < 1 || row > len(a.rows) {
		return true
	}
	for _, cell := range a.rows[row-1] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
