package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-compare/core/table"
)

// newTable builds an in-memory table from delimiter-joined lines.
func newTable(delim string, lines ...string) *table.Table {
	t := &table.Table{Delimiter: delim}
	for i, line := range lines {
		t.Rows = append(t.Rows, table.Row{Position: i, Fields: strings.Split(line, delim)})
	}
	if len(t.Rows) > 0 {
		t.Columns = len(t.Rows[0].Fields)
	}
	return t
}

func TestRowDigest_Deterministic(t *testing.T) {
	d1 := RowDigest([]string{"a", "1", "x"})
	d2 := RowDigest([]string{"a", "1", "x"})
	assert.Equal(t, d1, d2)
	assert.Len(t, d1.String(), 32)
}

func TestRowDigest_OrderSensitive(t *testing.T) {
	d1 := RowDigest([]string{"a", "b"})
	d2 := RowDigest([]string{"b", "a"})
	assert.NotEqual(t, d1, d2)
}

func TestBuildIndex_DistinctKeys(t *testing.T) {
	tab := newTable(";", "a;1", "b;2", "c;3")

	index := BuildIndex(tab, nil)

	assert.Len(t, index, 3)
	assert.Equal(t, []int{1}, index[RowDigest([]string{"b", "2"})])
}

func TestBuildIndex_DuplicateAccounting(t *testing.T) {
	// "x" repeated 5 times among 10 total rows
	tab := newTable(";",
		"x;1", "a;1", "x;1", "b;1", "x;1",
		"c;1", "x;1", "d;1", "x;1", "e;1",
	)

	index := BuildIndex(tab, nil)

	// 5 duplicates of one row collapse into one key with 5 positions
	require.Len(t, index, 6)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, index[RowDigest([]string{"x", "1"})])
}

func TestBuildIndex_Progress(t *testing.T) {
	tab := newTable(";", "a;1", "b;2", "c;3")

	var calls [][2]int
	BuildIndex(tab, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})

	// Small tables still report completion once
	require.NotEmpty(t, calls)
	assert.Equal(t, [2]int{3, 3}, calls[len(calls)-1])
}

func TestBuildIndex_Empty(t *testing.T) {
	index := BuildIndex(&table.Table{Delimiter: ";"}, nil)
	assert.Empty(t, index)
}
