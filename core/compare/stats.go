package compare

// Statistics aggregates the distinct-row, duplication and similarity
// figures derived from both hash indexes and the reconciliation outcome.
type Statistics struct {
	// Distinct1 and Distinct2 are the distinct-row counts, equal to the
	// key counts of the respective hash indexes.
	Distinct1 int `json:"distinct_file1"`
	Distinct2 int `json:"distinct_file2"`

	// DuplicatePct1 and DuplicatePct2 are 100*(1 - distinct/total),
	// defined as 0 for an empty table.
	DuplicatePct1 float64 `json:"duplicate_pct_file1"`
	DuplicatePct2 float64 `json:"duplicate_pct_file2"`

	// Matched1 is the number of table 1 rows classified MatchedMoved.
	Matched1 int `json:"matched_file1"`

	// Matched2 is the number of distinct table 2 positions appearing in
	// any MatchedMoved position list.
	Matched2 int `json:"matched_file2"`

	// Similarity is 100*Matched1/max(len1, len2), defined as 100 when
	// both tables are empty.
	Similarity float64 `json:"similarity_pct"`
}

// Aggregate computes the statistics section from the reconciler output and
// both table indexes. When the reconciliation was skipped (structural-only
// mode) the match counts and similarity stay zero.
func Aggregate(len1, len2 int, index1, index2 HashIndex, rc *RowComparison) Statistics {
	s := Statistics{
		Distinct1:     len(index1),
		Distinct2:     len(index2),
		DuplicatePct1: duplicatePct(len(index1), len1),
		DuplicatePct2: duplicatePct(len(index2), len2),
	}

	if rc == nil || !rc.Performed {
		return s
	}

	s.Matched1 = len(rc.Moved)

	seen := make(map[int]struct{})
	for _, moved := range rc.Moved {
		for _, pos := range moved.MatchPositions {
			seen[pos] = struct{}{}
		}
	}
	s.Matched2 = len(seen)

	if total := max(len1, len2); total > 0 {
		s.Similarity = float64(s.Matched1) / float64(total) * 100
	} else {
		s.Similarity = 100
	}

	return s
}

func duplicatePct(distinct, total int) float64 {
	if total == 0 {
		return 0
	}
	return (1 - float64(distinct)/float64(total)) * 100
}
