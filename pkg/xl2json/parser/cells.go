package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellValue returns the typed value of a cell given its raw (unformatted) text.
// Empty cells are nil, booleans are bool, numbers are int64 or float64, numbers
// carrying a date format are time.Time and everything else is a string.
func (wb *Workbook) CellValue(sheet string, col, row int, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := wb.f.GetCellType(sheet, cell)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return true, nil
		case "0", "FALSE":
			return false, nil
		}
		return raw, nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return raw, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		v := parseValue(raw)
		if serial, ok := v.(float64); ok && wb.isDateCell(sheet, cell) {
			return wb.toTime(serial, raw), nil
		}
		if serial, ok := v.(int64); ok && wb.isDateCell(sheet, cell) {
			return wb.toTime(float64(serial), raw), nil
		}
		return v, nil
	default:
		return raw, nil
	}
}

func (wb *Workbook) toTime(serial float64, raw string) any {
	t, err := excelize.ExcelDateToTime(serial, wb.date1904)
	if err != nil {
		return raw
	}
	return t
}

// isDateCell reports whether the cell style applies a date or time number format.
func (wb *Workbook) isDateCell(sheet, cell string) bool {
	idx, err := wb.f.GetCellStyle(sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := wb.dateStyles[idx]; ok {
		return isDate
	}
	isDate := false
	if style, err := wb.f.GetStyle(idx); err == nil && style != nil {
		isDate = isDateFormat(style.NumFmt, style.CustomNumFmt)
	}
	wb.dateStyles[idx] = isDate
	return isDate
}

// isDateFormat classifies built-in number format ids and custom format codes.
func isDateFormat(id int, custom *string) bool {
	if custom != nil {
		return isDateFormatCode(*custom)
	}
	switch {
	case id >= 14 && id <= 22, id >= 27 && id <= 36, id >= 45 && id <= 47, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode looks for date tokens outside quoted literals and bracketed
// sections (colors, locales, elapsed time markers).
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(b.String(), "ydhs")
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or s unchanged.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
