package mapper

import (
	"strings"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/parser"
)

// MapForm collects the named cells that live on sheetName (compared
// case-insensitively) into a field set. With nil fieldNames every defined
// name of the workbook is a candidate. A name defined both for sheetName and
// for the workbook resolves to the sheet's own definition.
func MapForm(src parser.NamedCellSource, sheetName string, fieldNames []string) (*models.FieldSet, error) {
	if wb, ok := src.(*parser.Workbook); src == nil || ok && wb == nil {
		return nil, models.ErrMissingFileContent
	}
	if fieldNames == nil {
		fieldNames = src.Names()
	}

	fields := models.NewFieldSet()
	for _, name := range fieldNames {
		value, sheet, ok, err := src.Resolve(name, sheetName)
		if err != nil {
			return nil, err
		}
		if !ok || !strings.EqualFold(sheet, sheetName) {
			continue
		}
		fields.Set(name, value)
	}
	return fields, nil
}
