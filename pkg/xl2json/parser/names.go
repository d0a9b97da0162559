package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// builtInPrefix marks names Excel defines for itself (print areas, filters).
const builtInPrefix = "_xlnm."

// workbookScope is the scope excelize reports for names visible on every sheet.
const workbookScope = "Workbook"

// NamedCellSource resolves defined names to cell values.
type NamedCellSource interface {
	// Names enumerates the defined names of the workbook in definition order.
	Names() []string
	// Resolve returns the value of the top-left cell the name refers to and
	// the name of the sheet owning it. A definition scoped to sheet wins over
	// a workbook-wide one. ok is false when the name is not defined or does
	// not refer to a cell.
	Resolve(name, sheet string) (value any, owner string, ok bool, err error)
}

// Names implements NamedCellSource. Built-in names are skipped and a name
// defined in several scopes is reported once.
func (wb *Workbook) Names() []string {
	if wb == nil || wb.f == nil {
		return nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, dn := range wb.f.GetDefinedName() {
		key := strings.ToLower(dn.Name)
		if strings.HasPrefix(key, builtInPrefix) || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, dn.Name)
	}
	return names
}

// Resolve implements NamedCellSource. Defined names are matched
// case-insensitively, the way Excel treats them. Definitions scoped to
// another sheet are used only when neither sheet nor the workbook defines
// the name.
func (wb *Workbook) Resolve(name, sheet string) (any, string, bool, error) {
	if wb == nil || wb.f == nil {
		return nil, "", false, models.ErrMissingFileContent
	}
	var best *excelize.DefinedName
	bestRank := 0
	for _, dn := range wb.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if _, _, ok := parseReference(dn.RefersTo); !ok {
			continue
		}
		rank := scopeRank(dn.Scope, sheet)
		if best == nil || rank < bestRank {
			best, bestRank = &dn, rank
		}
	}
	if best == nil {
		return nil, "", false, nil
	}

	owner, cell, _ := parseReference(best.RefersTo)
	owner, ok := wb.SheetName(owner)
	if !ok {
		return nil, "", false, nil
	}
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return nil, "", false, nil
	}
	raw, err := wb.f.GetCellValue(owner, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", false, err
	}
	value, err := wb.CellValue(owner, col, row, raw)
	if err != nil {
		return nil, "", false, err
	}
	return value, owner, true, nil
}

// scopeRank orders definitions of one name: the requested sheet's own
// definition, then the workbook-wide one, then any other sheet's.
func scopeRank(scope, sheet string) int {
	switch {
	case sheet != "" && strings.EqualFold(scope, sheet):
		return 0
	case scope == "" || scope == workbookScope:
		return 1
	}
	return 2
}

// parseReference parses a defined name reference.
// Format: 'Sheet Name'!$A$1, Sheet1!$A$1:$D$10 or =Sheet1!A1.
// The first area of a union and the top-left cell of a range are used.
func parseReference(ref string) (string, string, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	quoted := false
	for i, r := range ref {
		if r == '\'' {
			quoted = !quoted
		} else if r == ',' && !quoted {
			ref = ref[:i]
			break
		}
	}

	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return "", "", false
	}
	sheet := ref[:idx]
	rangeStr := ref[idx+1:]

	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	rangeStr = strings.ReplaceAll(rangeStr, "$", "")
	cell, _, _ := strings.Cut(rangeStr, ":")
	if sheet == "" || cell == "" {
		return "", "", false
	}
	return sheet, cell, true
}
