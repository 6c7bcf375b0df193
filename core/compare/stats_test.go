package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Identity(t *testing.T) {
	t1 := newTable(",", "a,1", "b,2", "c,3")
	t2 := newTable(",", "a,1", "b,2", "c,3")
	idx1, idx2 := BuildIndex(t1, nil), BuildIndex(t2, nil)

	rc, err := Reconcile(context.Background(), t1, t2, idx2, Config{SearchBudget: 10}, nil)
	require.NoError(t, err)

	s := Aggregate(t1.Len(), t2.Len(), idx1, idx2, rc)

	assert.Equal(t, 3, s.Distinct1)
	assert.Equal(t, 3, s.Distinct2)
	assert.Zero(t, s.DuplicatePct1)
	assert.Equal(t, 3, s.Matched1)
	assert.Equal(t, 3, s.Matched2)
	assert.InDelta(t, 100.0, s.Similarity, 1e-9)
}

func TestAggregate_Disjoint(t *testing.T) {
	t1 := newTable(",", "a,1", "b,2")
	t2 := newTable(",", "x,9", "y,8")
	idx1, idx2 := BuildIndex(t1, nil), BuildIndex(t2, nil)

	rc, err := Reconcile(context.Background(), t1, t2, idx2, Config{SearchBudget: 10}, nil)
	require.NoError(t, err)

	s := Aggregate(t1.Len(), t2.Len(), idx1, idx2, rc)

	assert.Zero(t, s.Matched1)
	assert.Zero(t, s.Matched2)
	assert.Zero(t, s.Similarity)
}

func TestAggregate_DuplicatePercentage(t *testing.T) {
	// "x" repeated 5 times among 10 rows: 6 distinct, 1-6/10 = 40%
	t1 := newTable(";",
		"x", "a", "x", "b", "x",
		"c", "x", "d", "x", "e",
	)
	idx1 := BuildIndex(t1, nil)

	s := Aggregate(t1.Len(), 0, idx1, HashIndex{}, nil)

	assert.Equal(t, 6, s.Distinct1)
	assert.InDelta(t, 40.0, s.DuplicatePct1, 1e-9)
}

func TestAggregate_DuplicateHalf(t *testing.T) {
	// 10 rows collapsing to 5 distinct: 50% duplication
	t1 := newTable(";",
		"a", "a", "b", "b", "c",
		"c", "d", "d", "e", "e",
	)
	idx1 := BuildIndex(t1, nil)

	s := Aggregate(t1.Len(), 0, idx1, HashIndex{}, nil)

	assert.Equal(t, 5, s.Distinct1)
	assert.InDelta(t, 50.0, s.DuplicatePct1, 1e-9)
}

func TestAggregate_EmptyTables(t *testing.T) {
	t1, t2 := newTable(","), newTable(",")
	idx1, idx2 := BuildIndex(t1, nil), BuildIndex(t2, nil)

	rc, err := Reconcile(context.Background(), t1, t2, idx2, Config{SearchBudget: 10}, nil)
	require.NoError(t, err)

	s := Aggregate(0, 0, idx1, idx2, rc)

	assert.Zero(t, s.DuplicatePct1)
	assert.Zero(t, s.DuplicatePct2)
	// Two empty tables are trivially identical
	assert.InDelta(t, 100.0, s.Similarity, 1e-9)
}

func TestAggregate_StructuralOnly(t *testing.T) {
	t1 := newTable(",", "a,1", "a,1")
	idx1 := BuildIndex(t1, nil)

	s := Aggregate(t1.Len(), 0, idx1, HashIndex{}, &RowComparison{Performed: false})

	// Distinct counts still computed; match figures stay zero
	assert.Equal(t, 1, s.Distinct1)
	assert.InDelta(t, 50.0, s.DuplicatePct1, 1e-9)
	assert.Zero(t, s.Matched1)
	assert.Zero(t, s.Similarity)
}

func TestAggregate_MatchedInFile2CollapsesDuplicates(t *testing.T) {
	t1 := newTable(",", "x,1", "x,1")
	t2 := newTable(",", "x,1", "x,1", "x,1")
	idx1, idx2 := BuildIndex(t1, nil), BuildIndex(t2, nil)

	rc, err := Reconcile(context.Background(), t1, t2, idx2, Config{SearchBudget: 10}, nil)
	require.NoError(t, err)

	s := Aggregate(t1.Len(), t2.Len(), idx1, idx2, rc)

	// Both table 1 rows match all three table 2 positions
	assert.Equal(t, 2, s.Matched1)
	assert.Equal(t, 3, s.Matched2)
	assert.InDelta(t, 2.0/3.0*100, s.Similarity, 1e-9)
}
