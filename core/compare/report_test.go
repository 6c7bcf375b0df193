package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runConfig() Config {
	return Config{
		Delimiter:    ";",
		SearchBudget: 1000,
		Workers:      1,
	}
}

func TestRun_Identity(t *testing.T) {
	f1 := writeFile(t, "a.txt", "a;1\nb;2\nc;3\n")
	f2 := writeFile(t, "b.txt", "a;1\nb;2\nc;3\n")

	report, err := Run(context.Background(), f1, f2, runConfig(), nil)
	require.NoError(t, err)

	assert.True(t, report.RowComparison.Performed)
	assert.Len(t, report.RowComparison.Moved, 3)
	assert.Empty(t, report.RowComparison.NotFound)
	assert.Empty(t, report.RowComparison.ExclusiveFile1)
	assert.InDelta(t, 100.0, report.Statistics.Similarity, 1e-9)

	assert.NotEmpty(t, report.Metadata.RunID)
	assert.Equal(t, "utf-8", report.Metadata.File1.Encoding)
	assert.Equal(t, ";", report.Metadata.Config.Delimiter)
	assert.Equal(t, []string{"utf-8", "latin1", "cp1252"}, report.Metadata.Config.Encodings)
}

func TestRun_ReorderedRows(t *testing.T) {
	f1 := writeFile(t, "a.txt", "a,1\nb,2\nc,3\n")
	f2 := writeFile(t, "b.txt", "c,3\na,1\nb,2\n")

	cfg := runConfig()
	cfg.Delimiter = ","

	report, err := Run(context.Background(), f1, f2, cfg, nil)
	require.NoError(t, err)

	assert.Len(t, report.RowComparison.Moved, 3)
	assert.Empty(t, report.RowComparison.NotFound)
	assert.InDelta(t, 100.0, report.Statistics.Similarity, 1e-9)
}

func TestRun_ColumnMismatchDegradesToStructuralOnly(t *testing.T) {
	f1 := writeFile(t, "a.txt", "a;1;x\nb;2;y\n")
	f2 := writeFile(t, "b.txt", "a;1\nb;2\n")

	report, err := Run(context.Background(), f1, f2, runConfig(), nil)
	require.NoError(t, err)

	// Not an error: the run completes with a structural-only report
	assert.False(t, report.Structure.Columns.SameCount)
	assert.False(t, report.RowComparison.Performed)
	assert.Empty(t, report.RowComparison.Moved)

	// Distinct counts are still reported in structural-only mode
	assert.Equal(t, 2, report.Statistics.Distinct1)
	assert.Equal(t, 2, report.Statistics.Distinct2)
}

func TestRun_NormalizationAlignsPunctuation(t *testing.T) {
	// Same data modulo decimal separator and whitespace
	f1 := writeFile(t, "a.txt", "josé maria;1,50\n")
	f2 := writeFile(t, "b.txt", " josé maria ;1.50\n")

	cfg := runConfig()
	cfg.NormalizePunctuation = true

	report, err := Run(context.Background(), f1, f2, cfg, nil)
	require.NoError(t, err)

	require.Len(t, report.RowComparison.Moved, 1)
	assert.InDelta(t, 100.0, report.Statistics.Similarity, 1e-9)
}

func TestRun_ColumnExclusionAppliedToBoth(t *testing.T) {
	// Files differ only in column 0
	f1 := writeFile(t, "a.txt", "id1;x;1\nid2;y;2\n")
	f2 := writeFile(t, "b.txt", "zz1;x;1\nzz2;y;2\n")

	cfg := runConfig()
	cfg.ExcludeColumns = []int{0}

	report, err := Run(context.Background(), f1, f2, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Metadata.File1.Columns)
	assert.Equal(t, 2, report.Metadata.File2.Columns)
	assert.Equal(t, 2, report.Rows.Rows1)
	assert.Len(t, report.RowComparison.Moved, 2)
	assert.InDelta(t, 100.0, report.Statistics.Similarity, 1e-9)
}

func TestRun_LoadErrorIsFatal(t *testing.T) {
	f1 := writeFile(t, "a.txt", "a;1\n")

	_, err := Run(context.Background(), f1, filepath.Join(t.TempDir(), "missing.txt"), runConfig(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Deterministic(t *testing.T) {
	f1 := writeFile(t, "a.txt", "a;1\nb;2\nc;3\nd;4\n")
	f2 := writeFile(t, "b.txt", "d;4\nb;2\na;1\nx;9\n")

	cfg := runConfig()
	cfg.Workers = 4

	r1, err := Run(context.Background(), f1, f2, cfg, nil)
	require.NoError(t, err)
	r2, err := Run(context.Background(), f1, f2, cfg, nil)
	require.NoError(t, err)

	// Everything except the per-run metadata must be byte-identical
	assert.Equal(t, r1.Structure, r2.Structure)
	assert.Equal(t, r1.Rows, r2.Rows)
	assert.Equal(t, r1.RowComparison, r2.RowComparison)
	assert.Equal(t, r1.Statistics, r2.Statistics)
}
