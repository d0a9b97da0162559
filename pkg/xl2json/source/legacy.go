package source

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// convertXLS decodes a BIFF workbook and re-encodes every sheet as xlsx.
// The decoder panics on some malformed records; those panics are returned as
// errors.
func (a *Adapter) convertXLS(rs io.ReadSeeker) (buf *bytes.Buffer, err error) {
	enc, err := a.encoding()
	if err != nil {
		return nil, err
	}

	w := newBookWriter()
	defer func() {
		if r := recover(); r != nil {
			w.close()
			buf, err = nil, fmt.Errorf("decoding legacy workbook: %v", r)
		}
	}()

	book, err := xls.OpenReader(rs, a.charset)
	if err != nil {
		w.close()
		return nil, fmt.Errorf("decoding legacy workbook: %w", err)
	}
	if book == nil {
		w.close()
		return nil, fmt.Errorf("%w: no workbook stream", models.ErrUnsupportedFormat)
	}

	for i := range book.NumSheets() {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		if err := w.writeSheet(decodeLegacy(sheet.Name, enc), legacyRows(sheet, enc)); err != nil {
			w.close()
			return nil, err
		}
	}
	return w.bytes()
}

func legacyRows(sheet *xls.WorkSheet, enc encoding.Encoding) func(yield func([]any, error) bool) {
	return func(yield func([]any, error) bool) {
		for i := 0; i <= int(sheet.MaxRow); i++ {
			var values []any
			if row := legacyRow(sheet, i); row != nil {
				last := -1
				for c := 0; c <= row.LastCol(); c++ {
					v := typed(decodeLegacy(row.Col(c), enc))
					values = append(values, v)
					if v != nil {
						last = c
					}
				}
				values = values[:last+1]
			}
			if !yield(values, nil) {
				return
			}
		}
	}
}

// legacyRow returns nil for rows the sheet does not store.
func legacyRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// decodeLegacy converts 8-bit code page text (BIFF5 and older) that the
// decoder passes through as raw bytes.
func decodeLegacy(s string, enc encoding.Encoding) string {
	if utf8.ValidString(s) {
		return s
	}
	if out, err := enc.NewDecoder().String(s); err == nil {
		return out
	}
	return s
}

func (a *Adapter) encoding() (encoding.Encoding, error) {
	enc, err := htmlindex.Get(a.charset)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", a.charset, err)
	}
	return enc, nil
}
