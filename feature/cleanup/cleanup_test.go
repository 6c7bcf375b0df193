package cleanup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDerivedPath(t *testing.T) {
	tests := []struct {
		src    string
		suffix string
		want   string
	}{
		{"data.txt", "_U", "data_U.txt"},
		{"/tmp/extract.csv", "_R", "/tmp/extract_R.csv"},
		{"noext", "_e", "noext_e"},
		{"a.b.txt", "_e", "a.b_e.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DerivedPath(tt.src, tt.suffix))
	}
}

func TestFixEncoding(t *testing.T) {
	// "ção" in Latin-1
	src := writeFile(t, "latin1.txt", []byte{0xE7, 0xE3, 'o', '\n', 'a', 'b', '\n'})
	dst := DerivedPath(src, "_e")

	res, err := FixEncoding(src, dst)
	require.NoError(t, err)

	assert.Equal(t, dst, res.Output)
	assert.Equal(t, 2, res.Lines)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ção\nab\n", string(data))
}

func TestFixEncoding_MissingSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "missing.txt")

	_, err := FixEncoding(src, DerivedPath(src, "_e"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRemoveColumn(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		column int
		want   string
	}{
		{
			name:   "first column",
			input:  "a;1;x\nb;2;y\n",
			column: 0,
			want:   "1;x\n2;y\n",
		},
		{
			name:   "middle column",
			input:  "a;1;x\nb;2;y\n",
			column: 1,
			want:   "a;x\nb;y\n",
		},
		{
			name:   "last column",
			input:  "a;1;x\nb;2;y\n",
			column: 2,
			want:   "a;1\nb;2\n",
		},
		{
			name:   "short lines pass through",
			input:  "a;1;x\nb\n",
			column: 2,
			want:   "a;1\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeFile(t, "in.txt", []byte(tt.input))
			dst := DerivedPath(src, "_R")

			res, err := RemoveColumn(src, dst, ";", tt.column)
			require.NoError(t, err)
			assert.Equal(t, 2, res.Lines)

			data, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRemoveColumn_NegativeIndex(t *testing.T) {
	src := writeFile(t, "in.txt", []byte("a;1\n"))

	_, err := RemoveColumn(src, DerivedPath(src, "_R"), ";", -1)
	require.Error(t, err)
}

func TestDedupeLines(t *testing.T) {
	src := writeFile(t, "in.txt", []byte("a\nb\na\nc\nb\na\n"))
	dst := DerivedPath(src, "_U")

	res, err := DedupeLines(src, dst)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Unique)
	assert.Equal(t, 3, res.Duplicates)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	// First occurrence order is preserved
	assert.Equal(t, "a\nb\nc\n", string(data))
}

func TestDedupeLines_WhitespaceSensitive(t *testing.T) {
	src := writeFile(t, "in.txt", []byte("a\na \n a\n"))
	dst := DerivedPath(src, "_U")

	res, err := DedupeLines(src, dst)
	require.NoError(t, err)

	// Lines differing only in whitespace are distinct
	assert.Equal(t, 3, res.Unique)
	assert.Zero(t, res.Duplicates)
}
