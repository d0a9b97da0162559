package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnCount returns the number of columns of a sheet: the wider of the
// stored used range and the right-most non-empty cell. Writers such as
// excelize leave the used range at "A1", so it is only a lower bound. The
// scan streams the rows.
func (wb *Workbook) ColumnCount(sheet string) (int, error) {
	ref, err := wb.f.GetSheetDimension(sheet)
	if err != nil {
		return 0, err
	}
	width, _ := dimensionColumns(ref)

	rows, err := wb.f.Rows(sheet)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return 0, err
		}
		width = max(width, rightEdge(cols))
	}
	if err := rows.Error(); err != nil {
		return 0, err
	}
	return width, nil
}

// dimensionColumns converts a range such as "A1:D10" (or a single cell "A1")
// to the count of columns from column A through the right edge.
func dimensionColumns(ref string) (int, bool) {
	if ref == "" {
		return 0, false
	}
	parts := strings.Split(strings.ReplaceAll(ref, "$", ""), ":")
	last := parts[len(parts)-1]
	col, _, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return 0, false
	}
	return col, true
}

// rightEdge returns the 1-based column of the last non-empty cell of a row,
// or 0 for an empty row.
func rightEdge(cols []string) int {
	for i := len(cols) - 1; i >= 0; i-- {
		if cols[i] != "" {
			return i + 1
		}
	}
	return 0
}
