package source

import (
	"bytes"
	"iter"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// bookWriter re-encodes decoded rows as an xlsx workbook.
type bookWriter struct {
	f      *excelize.File
	sheets int
}

func newBookWriter() *bookWriter {
	return &bookWriter{f: excelize.NewFile()}
}

// writeSheet appends a sheet holding rows. Row n of the sequence lands on
// spreadsheet row n+1; nil values leave the cell empty.
func (w *bookWriter) writeSheet(name string, rows iter.Seq2[[]any, error]) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName(w.f.GetSheetName(0), name); err != nil {
			return err
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	w.sheets++

	sw, err := w.f.NewStreamWriter(name)
	if err != nil {
		return err
	}
	n := 0
	for values, err := range rows {
		if err != nil {
			return err
		}
		n++
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// bytes serializes the workbook and releases it.
func (w *bookWriter) bytes() (*bytes.Buffer, error) {
	defer w.f.Close()
	return w.f.WriteToBuffer()
}

func (w *bookWriter) close() {
	_ = w.f.Close()
}

// typed turns decoded text into a cell value. Only canonical integer and
// decimal spellings become numbers so that codes like "007" survive as text.
// NaN and infinities stay text.
func typed(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) &&
		strconv.FormatFloat(f, 'f', -1, 64) == s {
		return f
	}
	return s
}
