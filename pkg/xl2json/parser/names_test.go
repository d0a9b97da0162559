package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

func TestNamedCells(t *testing.T) {
	wb := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "B2", "Alice")
		f.SetCellValue("Sheet1", "B3", 30)
		f.NewSheet("Other Sheet")
		f.SetCellValue("Other Sheet", "A1", "elsewhere")
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Name", RefersTo: "Sheet1!$B$2"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Age", RefersTo: "Sheet1!$B$3:$B$4"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Remote", RefersTo: "'Other Sheet'!$A$1"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "_xlnm.Print_Area", RefersTo: "Sheet1!$A$1:$B$3", Scope: "Sheet1"}))
	})

	assert.Equal(t, []string{"Name", "Age", "Remote"}, wb.Names())

	value, sheet, ok, err := wb.Resolve("Name", "Sheet1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", value)
	assert.Equal(t, "Sheet1", sheet)

	value, _, ok, err = wb.Resolve("age", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(30), value)

	value, sheet, ok, err = wb.Resolve("Remote", "Sheet1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "elsewhere", value)
	assert.Equal(t, "Other Sheet", sheet)

	_, _, ok, err = wb.Resolve("Missing", "Sheet1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNamedCellsScoped(t *testing.T) {
	wb := buildWorkbook(t, func(f *excelize.File) {
		f.NewSheet("Sheet2")
		f.SetCellValue("Sheet1", "A1", "one")
		f.SetCellValue("Sheet2", "A1", "two")
		f.SetCellValue("Sheet1", "C1", "global")
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Total", RefersTo: "Sheet1!$A$1", Scope: "Sheet1"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Total", RefersTo: "Sheet2!$A$1", Scope: "Sheet2"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Note", RefersTo: "Sheet1!$C$1"}))
		require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Note", RefersTo: "Sheet2!$A$1", Scope: "Sheet2"}))
	})

	assert.Equal(t, []string{"Total", "Note"}, wb.Names())

	tests := []struct {
		name  string
		sheet string
		value any
		owner string
	}{
		{"Total", "Sheet1", "one", "Sheet1"},
		{"Total", "sheet2", "two", "Sheet2"},
		{"Note", "Sheet1", "global", "Sheet1"},
		{"Note", "Sheet2", "two", "Sheet2"},
		{"Note", "", "global", "Sheet1"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.sheet, func(t *testing.T) {
			value, owner, ok, err := wb.Resolve(tt.name, tt.sheet)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.owner, owner)
		})
	}
}

func TestNamedCellsNilWorkbook(t *testing.T) {
	var wb *Workbook
	assert.Empty(t, wb.Names())
	_, _, ok, err := wb.Resolve("Total", "Sheet1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, models.ErrMissingFileContent)
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		cell  string
		ok    bool
	}{
		{"Sheet1!$A$1", "Sheet1", "A1", true},
		{"=Sheet1!B2", "Sheet1", "B2", true},
		{"'My Sheet'!$A$1:$D$10", "My Sheet", "A1", true},
		{"'It''s'!C3", "It's", "C3", true},
		{"'Sales, 2024'!$A$1,'Sales, 2024'!$C$1", "Sales, 2024", "A1", true},
		{"#REF!", "", "", false},
		{"42", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, cell, ok := parseReference(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.sheet, sheet)
			assert.Equal(t, tt.cell, cell)
		})
	}
}
