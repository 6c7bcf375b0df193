package compare

import (
	"strconv"
	"strings"

	"table-compare/core/table"
)

// Column type names produced by inference. All values are loaded as text;
// inference only distinguishes columns that are uniformly numeric or empty.
const (
	TypeText    = "text"
	TypeNumeric = "numeric"
	TypeEmpty   = "empty"
)

// ColumnComparison describes how the column layouts of the two tables
// relate. Positions are 0-based and counted after column exclusion.
type ColumnComparison struct {
	Count1 int `json:"count_file1"`
	Count2 int `json:"count_file2"`

	// SameCount is true when both tables have the same column count.
	// When false, detailed row reconciliation is skipped.
	SameCount bool `json:"same_count"`

	// CountDiff is the absolute difference of the two counts.
	CountDiff int `json:"count_diff"`

	// Only1 and Only2 hold the symmetric difference of column positions.
	Only1 []int `json:"only_file1"`
	Only2 []int `json:"only_file2"`

	// Common holds the column positions present in both tables.
	Common []int `json:"common"`
}

// TypeDifference records a per-column inferred type disagreement.
type TypeDifference struct {
	Position int    `json:"position"`
	Type1    string `json:"file1"`
	Type2    string `json:"file2"`
}

// TypeComparison holds the per-column inferred types of both tables. It is
// only produced when the column counts match.
type TypeComparison struct {
	Types1      []string         `json:"file1"`
	Types2      []string         `json:"file2"`
	Differences []TypeDifference `json:"differences"`
	Identical   bool             `json:"identical"`
}

// Structure is the structural comparison section of the report.
type Structure struct {
	Columns ColumnComparison `json:"columns"`

	// Types is nil when the column counts differ.
	Types *TypeComparison `json:"types,omitempty"`
}

// CompareStructure compares the column layouts of both tables. Per-column
// type inference only runs when the counts match; a count mismatch is a
// designed degrade that downstream stages must honor by skipping row
// reconciliation.
func CompareStructure(t1, t2 *table.Table) Structure {
	c1, c2 := t1.Columns, t2.Columns

	cols := ColumnComparison{
		Count1:    c1,
		Count2:    c2,
		SameCount: c1 == c2,
		CountDiff: abs(c1 - c2),
		Only1:     positionRange(min(c1, c2), c1),
		Only2:     positionRange(min(c1, c2), c2),
		Common:    positionRange(0, min(c1, c2)),
	}

	s := Structure{Columns: cols}
	if !cols.SameCount {
		return s
	}

	types1 := inferColumnTypes(t1)
	types2 := inferColumnTypes(t2)

	tc := &TypeComparison{Types1: types1, Types2: types2}
	for i := range types1 {
		if types1[i] != types2[i] {
			tc.Differences = append(tc.Differences, TypeDifference{
				Position: i,
				Type1:    types1[i],
				Type2:    types2[i],
			})
		}
	}
	tc.Identical = len(tc.Differences) == 0
	s.Types = tc

	return s
}

// inferColumnTypes classifies each column of a table as empty, numeric or
// text by scanning all rows. A column is numeric when every non-empty value
// parses as a number, and empty when it has no non-empty values at all.
func inferColumnTypes(t *table.Table) []string {
	types := make([]string, t.Columns)

	for col := 0; col < t.Columns; col++ {
		sawValue := false
		numeric := true

		for i := range t.Rows {
			if col >= len(t.Rows[i].Fields) {
				continue
			}
			v := strings.TrimSpace(t.Rows[i].Fields[col])
			if v == "" {
				continue
			}
			sawValue = true
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				numeric = false
				break
			}
		}

		switch {
		case !sawValue:
			types[col] = TypeEmpty
		case numeric:
			types[col] = TypeNumeric
		default:
			types[col] = TypeText
		}
	}

	return types
}

func positionRange(from, to int) []int {
	if from >= to {
		return nil
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
