package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
	"github.com/ukaji3/xl2json-go/pkg/xl2json/parser"
)

func TestMapForm(t *testing.T) {
	src := fakeNames{entries: []fakeName{
		{name: "Name", sheet: "Sheet1", value: "Alice"},
		{name: "Total", sheet: "Summary", value: int64(99)},
		{name: "Age", sheet: "Sheet1", value: int64(30)},
	}}

	t.Run("every name on the sheet", func(t *testing.T) {
		fields, err := MapForm(src, "Sheet1", nil)
		require.NoError(t, err)
		assert.Equal(t, models.Record{
			{Name: "Name", Value: "Alice"},
			{Name: "Age", Value: int64(30)},
		}, fields.Fields())
	})

	t.Run("sheet match ignores case", func(t *testing.T) {
		fields, err := MapForm(src, "summary", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, fields.Len())
		v, ok := fields.Get("Total")
		assert.True(t, ok)
		assert.Equal(t, int64(99), v)
	})

	t.Run("explicit field list keeps its order", func(t *testing.T) {
		fields, err := MapForm(src, "Sheet1", []string{"Age", "Missing", "Total", "Name"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Age", "Name"}, fields.Fields().Names())
	})

	t.Run("unknown sheet", func(t *testing.T) {
		fields, err := MapForm(src, "Nope", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, fields.Len())
	})
}

func TestMapFormSheetScopedNames(t *testing.T) {
	src := fakeNames{entries: []fakeName{
		{name: "Total", sheet: "Sheet1", scope: "Sheet1", value: "one"},
		{name: "Total", sheet: "Sheet2", scope: "Sheet2", value: "two"},
		{name: "Owner", sheet: "Sheet2", value: "Alice"},
	}}

	fields, err := MapForm(src, "Sheet2", nil)
	require.NoError(t, err)
	assert.Equal(t, models.Record{
		{Name: "Total", Value: "two"},
		{Name: "Owner", Value: "Alice"},
	}, fields.Fields())

	fields, err = MapForm(src, "Sheet1", nil)
	require.NoError(t, err)
	assert.Equal(t, models.Record{{Name: "Total", Value: "one"}}, fields.Fields())
}

func TestMapFormNilSource(t *testing.T) {
	_, err := MapForm(nil, "Sheet1", nil)
	assert.ErrorIs(t, err, models.ErrMissingFileContent)

	var wb *parser.Workbook
	_, err = MapForm(wb, "Sheet1", nil)
	assert.ErrorIs(t, err, models.ErrMissingFileContent)
}
