// Package parser wraps the spreadsheet engine behind the row cursor and
// named cell capabilities used by the mappers.
package parser

import (
	"io"
	"strings"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is an opened spreadsheet. It owns the underlying excelize file.
type Workbook struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

// OpenOptions configures OpenWorkbook.
type OpenOptions struct {
	// Password decrypts protected workbooks.
	Password string
}

// OpenWorkbook decodes an xlsx stream.
func OpenWorkbook(r io.Reader, opts OpenOptions) (*Workbook, error) {
	if r == nil {
		return nil, models.ErrMissingFileContent
	}
	f, err := excelize.OpenReader(r, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, err
	}
	return NewWorkbook(f), nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File) *Workbook {
	wb := &Workbook{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb
}

// File exposes the excelize file.
func (wb *Workbook) File() *excelize.File {
	return wb.f
}

// Sheets returns the sheet names in workbook order.
func (wb *Workbook) Sheets() []string {
	return wb.f.GetSheetList()
}

// SheetName returns the canonical name of the sheet matching name
// case-insensitively.
func (wb *Workbook) SheetName(name string) (string, bool) {
	for _, s := range wb.f.GetSheetList() {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}

// Close releases the workbook.
func (wb *Workbook) Close() error {
	return wb.f.Close()
}
