package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVSheet is the sheet name given to delimited input.
const CSVSheet = "Sheet1"

// convertCSV decodes delimited text with the adapter charset, honoring a
// byte order mark when present, and re-encodes it as a single sheet.
func (a *Adapter) convertCSV(r io.Reader) (*bytes.Buffer, error) {
	enc, err := a.encoding()
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows := func(yield func([]any, error) bool) {
		for {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			values := make([]any, len(record))
			for i, s := range record {
				values[i] = typed(s)
			}
			if !yield(values, nil) {
				return
			}
		}
	}

	w := newBookWriter()
	if err := w.writeSheet(CSVSheet, rows); err != nil {
		w.close()
		return nil, err
	}
	return w.bytes()
}
