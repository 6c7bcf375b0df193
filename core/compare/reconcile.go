package compare

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"table-compare/core/table"
)

// searchProgressInterval is how many candidates pass between advisory
// progress calls during the search phase.
const searchProgressInterval = 200

// Classification is the reconciliation outcome of a single row. The four
// values are mutually exclusive and together account for every row of both
// tables.
type Classification string

const (
	// MatchedMoved means the row's digest was found in the other table,
	// at one or more (possibly different) positions.
	MatchedMoved Classification = "matched_moved"

	// NotFound means the row's digest is absent from the other table.
	NotFound Classification = "not_found"

	// NotSearched means the row was excluded from the search because the
	// candidate budget was exhausted. It is never counted as NotFound.
	NotSearched Classification = "not_searched"

	// Exclusive means the row's position lies beyond the shorter table's
	// length, so no search was attempted.
	Exclusive Classification = "exclusive"
)

// MovedRow records a table 1 row whose content was found in table 2.
type MovedRow struct {
	// Position is the row's 0-based position in table 1.
	Position int `json:"position"`

	// MatchPositions lists every table 2 position holding the same
	// content. Duplicate content in table 2 yields multiple entries.
	MatchPositions []int `json:"match_positions"`

	// Content is the delimiter-joined row content.
	Content string `json:"content"`
}

// UnmatchedRow records a row that ended up outside the MatchedMoved
// category, with its literal content for the companion artifact.
type UnmatchedRow struct {
	Position int    `json:"position"`
	Content  string `json:"content"`
}

// RowComparison is the full outcome of the row reconciliation phase.
//
// Accounting invariant: for table 1,
//
//	len(Moved) + len(NotFound) + len(NotSearched) + len(ExclusiveFile1) == len(table1)
//
// and len(Moved)+len(NotFound) == Searched. A table 2 row counts as matched
// when its position appears in any MovedRow's MatchPositions.
type RowComparison struct {
	// Performed is false when a column count mismatch degraded the run to
	// a structural-only report.
	Performed bool `json:"performed"`

	Moved          []MovedRow     `json:"moved"`
	NotFound       []UnmatchedRow `json:"not_found"`
	NotSearched    []UnmatchedRow `json:"not_searched"`
	ExclusiveFile1 []UnmatchedRow `json:"exclusive_file1"`
	ExclusiveFile2 []UnmatchedRow `json:"exclusive_file2"`

	// CandidateCount is the size of the candidate set, the length of the
	// shorter table.
	CandidateCount int `json:"candidate_count"`

	// Searched is the number of candidates actually examined. It equals
	// CandidateCount unless the budget was exhausted.
	Searched int `json:"searched"`

	// BudgetExhausted is true when candidates beyond the budget were
	// marked NotSearched.
	BudgetExhausted bool `json:"budget_exhausted"`
}

// Reconcile classifies every row of both tables using the digest index
// built over table 2.
//
// Rows beyond the shorter table's length are Exclusive to their table. The
// remaining candidate range is searched in original order up to the budget:
// positional equality is never assumed inside the candidate range, every
// candidate is looked up by content. Candidates beyond the budget are marked
// NotSearched.
//
// The search phase shards candidates across cfg.Workers goroutines when
// Workers > 1. Lookups are read-only against the immutable index and each
// shard writes to its own pre-allocated result slots, so the outcome is
// deterministic and identical to the sequential path. Cancellation is
// whole-run: a cancelled context aborts with no partial result.
func Reconcile(ctx context.Context, t1, t2 *table.Table, index2 HashIndex, cfg Config, progress ProgressFunc) (*RowComparison, error) {
	len1, len2 := t1.Len(), t2.Len()
	m := min(len1, len2)

	rc := &RowComparison{
		Performed:      true,
		CandidateCount: m,
	}

	// Exclusive ranges need no search.
	for i := m; i < len1; i++ {
		rc.ExclusiveFile1 = append(rc.ExclusiveFile1, UnmatchedRow{Position: i, Content: t1.Line(i)})
	}
	for i := m; i < len2; i++ {
		rc.ExclusiveFile2 = append(rc.ExclusiveFile2, UnmatchedRow{Position: i, Content: t2.Line(i)})
	}

	limit := cfg.SearchBudget
	if limit < 0 {
		limit = 0
	}
	if limit >= m {
		limit = m
	} else {
		rc.BudgetExhausted = true
	}
	rc.Searched = limit

	matches, err := searchCandidates(ctx, t1, index2, limit, cfg.Workers, progress)
	if err != nil {
		return nil, err
	}

	for i := 0; i < limit; i++ {
		if len(matches[i]) > 0 {
			rc.Moved = append(rc.Moved, MovedRow{
				Position:       i,
				MatchPositions: matches[i],
				Content:        t1.Line(i),
			})
		} else {
			rc.NotFound = append(rc.NotFound, UnmatchedRow{Position: i, Content: t1.Line(i)})
		}
	}

	for i := limit; i < m; i++ {
		rc.NotSearched = append(rc.NotSearched, UnmatchedRow{Position: i, Content: t1.Line(i)})
	}

	return rc, nil
}

// searchCandidates looks up the first limit rows of t1 in the index and
// returns the match position lists, one slot per candidate.
func searchCandidates(ctx context.Context, t1 *table.Table, index2 HashIndex, limit, workers int, progress ProgressFunc) ([][]int, error) {
	matches := make([][]int, limit)
	if limit == 0 {
		return matches, nil
	}

	if workers <= 1 {
		for i := 0; i < limit; i++ {
			if i%searchProgressInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			matches[i] = index2[RowDigest(t1.Rows[i].Fields)]
			if progress != nil && ((i+1)%searchProgressInterval == 0 || i == limit-1) {
				progress(i+1, limit)
			}
		}
		return matches, nil
	}

	if workers > limit {
		workers = limit
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	chunk := (limit + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, limit)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if i%searchProgressInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				matches[i] = index2[RowDigest(t1.Rows[i].Fields)]
				n := done.Add(1)
				if progress != nil && (n%searchProgressInterval == 0 || n == int64(limit)) {
					progress(int(n), limit)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}
