package render

import (
	"bufio"
	"fmt"
	"os"

	"table-compare/core/compare"
)

// WriteUnmatched writes the companion plain-text artifact listing the
// literal content of every NotFound and file 1 exclusive row, in original
// order, one row per line. It returns the number of rows written; zero rows
// produce no file.
func WriteUnmatched(r *compare.Report, path string) (int, error) {
	rows := make([]compare.UnmatchedRow, 0,
		len(r.RowComparison.NotFound)+len(r.RowComparison.ExclusiveFile1))
	rows = append(rows, r.RowComparison.NotFound...)
	rows = append(rows, r.RowComparison.ExclusiveFile1...)

	if len(rows) == 0 {
		return 0, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(row.Content + "\n"); err != nil {
			return 0, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	return len(rows), nil
}
