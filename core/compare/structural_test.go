package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareStructure_SameLayout(t *testing.T) {
	t1 := newTable(";", "a;1", "b;2")
	t2 := newTable(";", "c;3", "d;4")

	s := CompareStructure(t1, t2)

	assert.True(t, s.Columns.SameCount)
	assert.Equal(t, 0, s.Columns.CountDiff)
	assert.Empty(t, s.Columns.Only1)
	assert.Empty(t, s.Columns.Only2)
	assert.Equal(t, []int{0, 1}, s.Columns.Common)

	require.NotNil(t, s.Types)
	assert.True(t, s.Types.Identical)
	assert.Equal(t, []string{TypeText, TypeNumeric}, s.Types.Types1)
}

func TestCompareStructure_CountMismatch(t *testing.T) {
	t1 := newTable(";", "a;1;x", "b;2;y")
	t2 := newTable(";", "c;3", "d;4")

	s := CompareStructure(t1, t2)

	assert.False(t, s.Columns.SameCount)
	assert.Equal(t, 1, s.Columns.CountDiff)
	assert.Equal(t, []int{2}, s.Columns.Only1)
	assert.Empty(t, s.Columns.Only2)
	assert.Equal(t, []int{0, 1}, s.Columns.Common)

	// Type inference is skipped on count mismatch
	assert.Nil(t, s.Types)
}

func TestCompareStructure_TypeDifferences(t *testing.T) {
	t1 := newTable(";", "1;x", "2;y")
	t2 := newTable(";", "a;x", "b;y")

	s := CompareStructure(t1, t2)

	require.NotNil(t, s.Types)
	assert.False(t, s.Types.Identical)
	require.Len(t, s.Types.Differences, 1)
	assert.Equal(t, 0, s.Types.Differences[0].Position)
	assert.Equal(t, TypeNumeric, s.Types.Differences[0].Type1)
	assert.Equal(t, TypeText, s.Types.Differences[0].Type2)
}

func TestInferColumnTypes(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "numeric column",
			lines: []string{"1;a", "2.5;b", "-3;c"},
			want:  []string{TypeNumeric, TypeText},
		},
		{
			name:  "empty column",
			lines: []string{"a;", "b;", "c;"},
			want:  []string{TypeText, TypeEmpty},
		},
		{
			name:  "mixed column is text",
			lines: []string{"1;a", "x;b"},
			want:  []string{TypeText, TypeText},
		},
		{
			name:  "blanks ignored for numeric",
			lines: []string{"1;a", ";b", "2;c"},
			want:  []string{TypeNumeric, TypeText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := newTable(";", tt.lines...)
			assert.Equal(t, tt.want, inferColumnTypes(tab))
		})
	}
}
