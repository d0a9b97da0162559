package parser

import (
	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/xuri/excelize/v2"
)

// RowCursor advances through the rows of one or more sections (sheets).
type RowCursor interface {
	// Next advances to the next row of the current section. It returns false
	// at the end of the section or on error.
	Next() bool
	// NextSection moves to the first position of the following section.
	NextSection() bool
	// FieldCount is the column count of the current section, or 0 when the
	// cursor is not positioned on a row.
	FieldCount() int
	// Value returns the typed value of column i of the current row. Columns
	// past the end of the row are nil.
	Value(i int) (any, error)
	// Err returns the first error met while reading.
	Err() error
	// Close releases the cursor.
	Close() error
}

// SheetCursor is a RowCursor over workbook sheets, streaming each sheet
// through excelize.Rows.
type SheetCursor struct {
	wb      *Workbook
	sheets  []string
	section int

	rows    *excelize.Rows
	columns int
	row     int
	current []string
	onRow   bool
	err     error
}

// NewCursor opens a cursor positioned before the first row of sheets[0].
// Nil sheets means every sheet of the workbook in order.
func NewCursor(wb *Workbook, sheets []string) (*SheetCursor, error) {
	if wb == nil {
		return nil, models.ErrMissingFileContent
	}
	if sheets == nil {
		sheets = wb.Sheets()
	}
	c := &SheetCursor{wb: wb, sheets: sheets}
	if err := c.open(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SheetCursor) open() error {
	c.row, c.current, c.onRow = 0, nil, false
	if c.section >= len(c.sheets) {
		return nil
	}
	sheet := c.sheets[c.section]
	columns, err := c.wb.ColumnCount(sheet)
	if err != nil {
		return err
	}
	rows, err := c.wb.f.Rows(sheet)
	if err != nil {
		return err
	}
	c.rows, c.columns = rows, columns
	return nil
}

// Sheet returns the name of the current section.
func (c *SheetCursor) Sheet() string {
	if c.section >= len(c.sheets) {
		return ""
	}
	return c.sheets[c.section]
}

// Next implements RowCursor.
func (c *SheetCursor) Next() bool {
	c.onRow = false
	c.current = nil
	if c.rows == nil || c.err != nil {
		return false
	}
	if !c.rows.Next() {
		c.err = c.rows.Error()
		return false
	}
	c.row++
	cols, err := c.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		c.err = err
		return false
	}
	c.current, c.onRow = cols, true
	return true
}

// NextSection implements RowCursor.
func (c *SheetCursor) NextSection() bool {
	if c.err != nil {
		return false
	}
	c.closeRows()
	if c.section >= len(c.sheets) {
		return false
	}
	c.section++
	if c.section >= len(c.sheets) {
		return false
	}
	if err := c.open(); err != nil {
		c.err = err
		return false
	}
	return true
}

// FieldCount implements RowCursor.
func (c *SheetCursor) FieldCount() int {
	if !c.onRow {
		return 0
	}
	return max(c.columns, len(c.current))
}

// Value implements RowCursor.
func (c *SheetCursor) Value(i int) (any, error) {
	if !c.onRow || i < 0 || i >= len(c.current) {
		return nil, nil
	}
	return c.wb.CellValue(c.Sheet(), i+1, c.row, c.current[i])
}

// Err implements RowCursor.
func (c *SheetCursor) Err() error {
	return c.err
}

// Close implements RowCursor.
func (c *SheetCursor) Close() error {
	return c.closeRows()
}

func (c *SheetCursor) closeRows() error {
	if c.rows == nil {
		return nil
	}
	err := c.rows.Close()
	c.rows = nil
	return err
}
