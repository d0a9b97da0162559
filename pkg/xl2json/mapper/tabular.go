package mapper

import (
	"iter"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/parser"
)

// TabularOptions configures MapTabular.
type TabularOptions struct {
	// SkipRows rows are discarded before the header row, whether or not
	// they exist.
	SkipRows int
	// Headers overrides the header row when non-nil.
	Headers []string
	// Replace sanitizes the resolved headers.
	Replace *ReplacementTable
	// OnlySampleRow limits the output to the first data row.
	OnlySampleRow bool
}

// MapTabular resolves the headers eagerly and returns them together with a
// single-use sequence of records, one per remaining row across all sections.
//
// With OnlySampleRow the sequence still visits every following section but
// emits nothing more after the first record.
func MapTabular(cur parser.RowCursor, opts TabularOptions) (models.HeaderSet, iter.Seq2[models.Record, error], error) {
	for range opts.SkipRows {
		cur.Next()
	}

	headers, err := ResolveHeaders(cur, opts.Headers)
	if err != nil {
		return nil, nil, err
	}
	headers, err = Sanitize(headers, opts.Replace)
	if err != nil {
		return nil, nil, err
	}

	seq := func(yield func(models.Record, error) bool) {
		emitted := 0
		for {
			for cur.Next() {
				if opts.OnlySampleRow && emitted >= 1 {
					break
				}
				record, err := mapRow(cur, headers)
				if err != nil {
					yield(nil, err)
					return
				}
				emitted++
				if !yield(record, nil) {
					return
				}
			}
			if err := cur.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !cur.NextSection() {
				break
			}
		}
		if err := cur.Err(); err != nil {
			yield(nil, err)
		}
	}
	return headers, seq, nil
}

// mapRow reads the current row positionally against headers.
func mapRow(cur parser.RowCursor, headers models.HeaderSet) (models.Record, error) {
	record := make(models.Record, len(headers))
	for i, name := range headers {
		v, err := cur.Value(i)
		if err != nil {
			return nil, err
		}
		record[i] = models.Field{Name: name, Value: v}
	}
	return record, nil
}

// Collect drains a record sequence into a slice.
func Collect(seq iter.Seq2[models.Record, error]) ([]models.Record, error) {
	var records []models.Record
	for record, err := range seq {
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
