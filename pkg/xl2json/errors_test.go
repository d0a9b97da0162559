package xl2json

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError(t *testing.T) {
	err := NewConversionError("book.xlsx", StageHeaders, ErrInvalidColumnCount)

	assert.Equal(t, `conversion error in "book.xlsx" (headers): invalid column amount`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidColumnCount))

	var target *ConversionError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "book.xlsx", target.File)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultTableOptions().Validate())
	assert.ErrorIs(t, TableOptions{SkipRows: -2}.Validate(), ErrInvalidOptions)
	assert.NoError(t, FormOptions{SheetName: "Sheet1"}.Validate())

	err := FormOptions{}.Validate()
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Contains(t, err.Error(), "SheetName")
}

func TestOptionsValidateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				errs[i] = TableOptions{SkipRows: -1}.Validate()
			} else {
				errs[i] = FormOptions{SheetName: "Sheet1"}.Validate()
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if i%2 == 0 {
			assert.ErrorIs(t, err, ErrInvalidOptions)
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestTableOptionsReplacement(t *testing.T) {
	assert.Nil(t, TableOptions{}.Replacement())
	assert.Nil(t, TableOptions{ReplaceFrom: []string{"a"}}.Replacement())
	table := TableOptions{ReplaceFrom: []string{"a"}, ReplaceTo: []string{"b"}}.Replacement()
	if assert.NotNil(t, table) {
		assert.Equal(t, []string{"a"}, table.From)
	}
}
