// Package xl2json converts spreadsheet workbooks into JSON: tabular sheets
// become arrays of objects, form sheets become a single object built from
// defined names, and a sample record can be turned into a Go model.
package xl2json

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/mapper"
)

// TableOptions configures tabular conversion.
type TableOptions struct {
	// SkipRows rows are discarded before the header row.
	SkipRows int `validate:"gte=0"`
	// ReplaceFrom and ReplaceTo are applied in order to header names. Both
	// must be set for replacement to happen.
	ReplaceFrom []string
	ReplaceTo   []string
	// HeaderColumns replaces the names read from the header row. It must
	// cover every column.
	HeaderColumns []string
	// OnlySampleRow limits the output to the first data row.
	OnlySampleRow bool
	// Sheet restricts conversion to one sheet, matched case-insensitively.
	// Empty means every sheet in workbook order.
	Sheet string
	// Password decrypts protected workbooks.
	Password string
	// Charset decodes legacy and delimited input. Empty means windows-1252.
	Charset string
}

// DefaultTableOptions returns default tabular conversion options.
func DefaultTableOptions() TableOptions {
	return TableOptions{}
}

// Replacement returns the header replacement table, or nil when none is set.
func (o TableOptions) Replacement() *mapper.ReplacementTable {
	return mapper.NewReplacementTable(o.ReplaceFrom, o.ReplaceTo)
}

// Validate checks the options.
func (o TableOptions) Validate() error {
	return validateStruct(o)
}

// FormOptions configures form conversion.
type FormOptions struct {
	// SheetName selects the named cells to include, matched case-insensitively.
	SheetName string `validate:"required"`
	// FieldNames lists the defined names to read. Nil means every defined
	// name of the workbook.
	FieldNames []string
	// Password decrypts protected workbooks.
	Password string
	// Charset decodes legacy input. Empty means windows-1252.
	Charset string
}

// Validate checks the options.
func (o FormOptions) Validate() error {
	return validateStruct(o)
}

// validate is shared so struct metadata is parsed once.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(fields, ", "))
}
