package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetAccessorHeaders(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{
		"Data": {
			{"Alpha", "", "Beta", "  Gamma  "},
			{"1", "2", "3", "4"},
		},
	})
	defer f.Close()

	acc, err := NewSheetAccessor(f, "Data")
	require.NoError(t, err)

	headers := acc.Headers()
	assert.Equal(t, 0, headers["Alpha"])
	assert.Equal(t, 2, headers["Beta"])
	assert.Equal(t, 3, headers["Gamma"], "header cells are trimmed")
	assert.NotContains(t, headers, "", "blank header cells are skipped")
	assert.Empty(t, acc.DuplicateHeaders())
}

func TestSheetAccessorDuplicateHeaders(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{
		"Data": {
			{"Alpha", "Beta", "Alpha"},
			{"1", "2", "3"},
		},
	})
	defer f.Close()

	acc, err := NewSheetAccessor(f, "Data")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha"}, acc.DuplicateHeaders())
	// First occurrence keeps its column.
	assert.Equal(t, "1", acc.HeaderText(2, "Alpha"))
}

func TestSheetAccessorCellText(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{
		"Data": {
			{"Alpha"},
			{"  padded  "},
		},
	})
	defer f.Close()

	acc, err := NewSheetAccessor(f, "Data")
	require.NoError(t, err)

	assert.Equal(t, "padded", acc.CellText(2, 0))
	assert.Equal(t, "", acc.CellText(2, 99), "outside used range")
	assert.Equal(t, "", acc.CellText(99, 0))
}

func TestSheetAccessorCounts(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{
		"Filled": {
			{"Alpha", "Beta"},
			{"1", "2"},
			{"3", "4"},
		},
		"HeaderOnly": {
			{"Alpha"},
		},
	})
	defer f.Close()

	filled, err := NewSheetAccessor(f, "Filled")
	require.NoError(t, err)
	assert.Equal(t, 3, filled.RowCount())
	assert.Equal(t, 2, filled.ColumnCount())
	assert.Equal(t, 2, filled.DataRowCount())

	headerOnly, err := NewSheetAccessor(f, "HeaderOnly")
	require.NoError(t, err)
	assert.Equal(t, 0, headerOnly.DataRowCount(), "fewer than 2 rows means zero data rows")
}

func TestSheetAccessorMissingSheet(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{"Data": {{"Alpha"}}})
	defer f.Close()

	_, err := NewSheetAccessor(f, "Nope")
	assert.Error(t, err)
}

func TestSheetAccessorRowIsBlank(t *testing.T) {
	f := buildWorkbook(t, map[string][][]string{
		"Data": {
			{"Alpha", "Beta"},
			{"", "  "},
			{"x", ""},
		},
	})
	defer f.Close()

	acc, err := NewSheetAccessor(f, "Data")
	require.NoError(t, err)

	assert.True(t, acc.RowIsBlank(2))
	assert.False(t, acc.RowIsBlank(3))
}
