package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCellValue(t *testing.T) {
	when := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	wb := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header1")
		f.SetCellValue("Sheet1", "B1", 100)
		f.SetCellValue("Sheet1", "C1", 200.5)
		f.SetCellValue("Sheet1", "D1", true)
		f.SetCellValue("Sheet1", "E1", "007")
		f.SetCellValue("Sheet1", "F1", when)
	})

	raw := func(cell string) string {
		v, err := wb.File().GetCellValue("Sheet1", cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		cell     string
		col      int
		expected any
	}{
		{"A1", 1, "Header1"},
		{"B1", 2, int64(100)},
		{"C1", 3, 200.5},
		{"D1", 4, true},
		{"E1", 5, "007"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := wb.CellValue("Sheet1", tt.col, 1, raw(tt.cell))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("date", func(t *testing.T) {
		got, err := wb.CellValue("Sheet1", 6, 1, raw("F1"))
		require.NoError(t, err)
		gotTime, ok := got.(time.Time)
		require.True(t, ok, "expected time.Time, got %T", got)
		assert.WithinDuration(t, when, gotTime, time.Second)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := wb.CellValue("Sheet1", 7, 1, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"NaN", "NaN"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		assert.Equal(t, tt.expected, result, "parseValue(%q)", tt.input)
	}
}

func TestIsDateFormat(t *testing.T) {
	custom := func(s string) *string { return &s }

	tests := []struct {
		name     string
		id       int
		custom   *string
		expected bool
	}{
		{"general", 0, nil, false},
		{"builtin short date", 14, nil, true},
		{"builtin datetime", 22, nil, true},
		{"builtin percent", 10, nil, false},
		{"custom iso date", 164, custom("yyyy-mm-dd"), true},
		{"custom time", 164, custom("hh:mm"), true},
		{"custom currency", 164, custom(`"$"#,##0.00`), false},
		{"quoted literal", 164, custom(`0 "days"`), false},
		{"color section", 164, custom(`[Red]0.00`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDateFormat(tt.id, tt.custom))
		})
	}
}
