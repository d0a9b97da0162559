package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook saves a workbook prepared by fill and reopens it from disk.
func buildWorkbook(t *testing.T, fill func(f *excelize.File)) *Workbook {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	fill(f)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	wb := NewWorkbook(f2)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}
