package schema

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var spreadsheetExts = []string{".xlsx", ".xlsm", ".xlsb", ".xls", ".csv"}

// ModelName derives the model type name from a workbook file name: the base
// name without its spreadsheet extension, as an exported identifier.
func ModelName(fileName string) string {
	base := filepath.Base(fileName)
	ext := filepath.Ext(base)
	for _, known := range spreadsheetExts {
		if strings.EqualFold(ext, known) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	return identifier(base, "Model")
}

// identifier turns s into an exported Go identifier. Runs of characters that
// cannot appear in an identifier separate words; each word gets an upper
// case first letter and keeps the rest. Empty results fall back to fallback.
func identifier(s, fallback string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	name := b.String()
	if name == "" {
		return fallback
	}
	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		name = "X" + name
	}
	return name
}
