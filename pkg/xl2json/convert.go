package xl2json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/mapper"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/output"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/parser"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/schema"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/source"
)

// input names what to open: a file on disk, or an in-memory stream when r
// is set.
type input struct {
	name string
	r    io.Reader
}

// check reports a missing file reference before any option is looked at.
func (in input) check() error {
	if in.r == nil && strings.TrimSpace(in.name) == "" {
		return ErrMissingFileName
	}
	return nil
}

func (in input) open(charset string) (*source.Stream, error) {
	adapter := source.New(source.WithCharset(charset))
	if in.r != nil {
		return adapter.OpenReader(in.name, in.r)
	}
	return adapter.Open(in.name)
}

// withWorkbook opens in, runs fn and releases every handle on return.
func withWorkbook(in input, password, charset string, fn func(*parser.Workbook) error) error {
	s, err := in.open(charset)
	if err != nil {
		if errors.Is(err, ErrMissingFileName) {
			return err
		}
		return NewConversionError(in.name, StageOpen, err)
	}
	defer s.Close()

	wb, err := parser.OpenWorkbook(s, parser.OpenOptions{Password: password})
	if err != nil {
		return NewConversionError(in.name, StageDecode, err)
	}
	defer wb.Close()

	return fn(wb)
}

// GetJSONString converts the tabular sheets of fileName into a JSON array.
func GetJSONString(fileName string, opts TableOptions) (string, error) {
	return jsonString(input{name: fileName}, opts)
}

// GetJSONStringFromReader is GetJSONString for in-memory input. name only
// selects the format and may be blank.
func GetJSONStringFromReader(name string, r io.Reader, opts TableOptions) (string, error) {
	if r == nil {
		return "", ErrMissingFileContent
	}
	return jsonString(input{name: name, r: r}, opts)
}

func jsonString(in input, opts TableOptions) (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, in, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteJSON streams the JSON array for fileName to w. On error w may hold a
// partial document.
func WriteJSON(w io.Writer, fileName string, opts TableOptions) error {
	return writeJSON(w, input{name: fileName}, opts)
}

// WriteJSONFromReader is WriteJSON for in-memory input.
func WriteJSONFromReader(w io.Writer, name string, r io.Reader, opts TableOptions) error {
	if r == nil {
		return ErrMissingFileContent
	}
	return writeJSON(w, input{name: name, r: r}, opts)
}

func writeJSON(w io.Writer, in input, opts TableOptions) error {
	if err := in.check(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	return withWorkbook(in, opts.Password, opts.Charset, func(wb *parser.Workbook) error {
		sheets, err := selectSheets(wb, opts.Sheet)
		if err != nil {
			return NewConversionError(in.name, StageOpen, err)
		}
		cur, err := parser.NewCursor(wb, sheets)
		if err != nil {
			return NewConversionError(in.name, StageDecode, err)
		}
		defer cur.Close()

		_, seq, err := mapper.MapTabular(cur, mapper.TabularOptions{
			SkipRows:      opts.SkipRows,
			Headers:       opts.HeaderColumns,
			Replace:       opts.Replacement(),
			OnlySampleRow: opts.OnlySampleRow,
		})
		if err != nil {
			return NewConversionError(in.name, StageHeaders, err)
		}
		if err := output.NewEncoder(w).WriteArray(seq); err != nil {
			return NewConversionError(in.name, StageRows, err)
		}
		return nil
	})
}

func selectSheets(wb *parser.Workbook, sheet string) ([]string, error) {
	if sheet == "" {
		return nil, nil
	}
	name, ok := wb.SheetName(sheet)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return []string{name}, nil
}

// GetJSONObjects converts fileName and decodes the result into generic maps.
// Numbers decode as float64 and dates as RFC 3339 strings.
func GetJSONObjects(fileName string, opts TableOptions) ([]map[string]any, error) {
	text, err := GetJSONString(fileName, opts)
	if err != nil {
		return nil, err
	}
	var objects []map[string]any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(text, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

// GetFormJSONString converts the defined names of one sheet into a JSON object.
func GetFormJSONString(fileName string, opts FormOptions) (string, error) {
	return formString(input{name: fileName}, opts)
}

// GetFormJSONStringFromReader is GetFormJSONString for in-memory input.
func GetFormJSONStringFromReader(name string, r io.Reader, opts FormOptions) (string, error) {
	if r == nil {
		return "", ErrMissingFileContent
	}
	return formString(input{name: name, r: r}, opts)
}

func formString(in input, opts FormOptions) (string, error) {
	var buf bytes.Buffer
	if err := writeFormJSON(&buf, in, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFormJSON writes the form object for fileName to w.
func WriteFormJSON(w io.Writer, fileName string, opts FormOptions) error {
	return writeFormJSON(w, input{name: fileName}, opts)
}

func writeFormJSON(w io.Writer, in input, opts FormOptions) error {
	if err := in.check(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	return withWorkbook(in, opts.Password, opts.Charset, func(wb *parser.Workbook) error {
		fields, err := mapper.MapForm(wb, opts.SheetName, opts.FieldNames)
		if err != nil {
			return NewConversionError(in.name, StageForm, err)
		}
		if err := output.NewEncoder(w).WriteObject(fields); err != nil {
			return NewConversionError(in.name, StageForm, err)
		}
		return nil
	})
}

// GetFormObject converts a form sheet and decodes the result into a map.
func GetFormObject(fileName string, opts FormOptions) (map[string]any, error) {
	text, err := GetFormJSONString(fileName, opts)
	if err != nil {
		return nil, err
	}
	var object map[string]any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(text, &object); err != nil {
		return nil, err
	}
	return object, nil
}

// GetClassModel renders Go source for a model of the first data row of
// fileName. The type is named after the file. An input without any output
// yields an empty string.
func GetClassModel(fileName string, opts TableOptions, pkg string) (string, error) {
	opts.OnlySampleRow = true
	sample, err := GetJSONString(fileName, opts)
	if err != nil {
		return "", err
	}
	src, err := schema.Generate(sample, schema.ModelName(fileName), pkg)
	if err != nil {
		return "", NewConversionError(fileName, StageModel, err)
	}
	return src, nil
}

// GetTable reads the first sheet of fileName into memory. With useHeader the
// first row after skipRows names the columns; otherwise every row is data
// and columns are named Column0, Column1 and so on.
func GetTable(fileName string, skipRows int, useHeader bool) (*models.Table, error) {
	in := input{name: fileName}
	if err := in.check(); err != nil {
		return nil, err
	}
	if skipRows < 0 {
		return nil, fmt.Errorf("%w: negative skip rows", ErrInvalidOptions)
	}
	var table *models.Table
	err := withWorkbook(in, "", "", func(wb *parser.Workbook) error {
		var err error
		table, err = readTable(wb, skipRows, useHeader)
		if err != nil {
			return NewConversionError(fileName, StageRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func readTable(wb *parser.Workbook, skipRows int, useHeader bool) (*models.Table, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return &models.Table{Columns: models.HeaderSet{}}, nil
	}
	cur, err := parser.NewCursor(wb, sheets[:1])
	if err != nil {
		return nil, err
	}
	defer cur.Close()

	for range skipRows {
		cur.Next()
	}

	table := &models.Table{Name: sheets[0]}
	if useHeader {
		if table.Columns, err = mapper.ResolveHeaders(cur, nil); err != nil {
			return nil, err
		}
	}
	for cur.Next() {
		if table.Columns == nil {
			table.Columns = make(models.HeaderSet, cur.FieldCount())
			for i := range table.Columns {
				table.Columns[i] = fmt.Sprintf("Column%d", i)
			}
		}
		row := make([]any, len(table.Columns))
		for i := range row {
			if row[i], err = cur.Value(i); err != nil {
				return nil, err
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if table.Columns == nil {
		table.Columns = models.HeaderSet{}
	}
	return table, nil
}
