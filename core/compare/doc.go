// Package compare implements the hash-indexed row reconciliation engine for
// two delimited tables.
//
// The engine classifies every row of both tables into exactly one of four
// disjoint categories:
//
//  1. MatchedMoved: the row's content digest exists in the other table,
//     possibly at a different position. All matching positions are kept,
//     since duplicate content yields multiple matches.
//  2. NotFound: the digest is absent from the other table after search.
//  3. NotSearched: the row fell beyond the configured search budget and was
//     excluded from the moved-row search. This is not an error and is never
//     conflated with NotFound.
//  4. Exclusive: the row's position lies beyond the shorter table's length,
//     so no search is attempted.
//
// # Architecture
//
// The engine is a sequential batch pipeline. Each stage returns an explicit,
// immutable result value and an orchestrator composes them into the final
// Report:
//
//  1. Structural comparator: column counts, position sets and per-column
//     inferred types. A column count mismatch degrades the run to a
//     structural-only report; it never fails it.
//  2. Hash indexer: a single linear pass building a digest-to-positions
//     index over one table. The index key count is the table's distinct-row
//     count.
//  3. Row reconciler: partitions rows into exclusive and candidate ranges,
//     then searches the candidate range against the index under the budget
//     cap. The search phase may be sharded across workers; the index is
//     immutable during search and result ordering stays deterministic.
//  4. Statistics aggregator: distinct counts, duplicate ratios, similarity.
//
// # Usage
//
//	cfg := compare.Config{Delimiter: ";", SearchBudget: 750000, Workers: 4}
//	report, err := compare.Run(ctx, "a.txt", "b.txt", cfg, log)
package compare
