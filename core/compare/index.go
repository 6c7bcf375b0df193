package compare

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"table-compare/core/table"
)

// digestSeparator joins a row's fields before hashing. Field order matters;
// the choice of separator only has to be stable, not re-parseable.
const digestSeparator = "|"

// progressInterval is how many rows pass between advisory progress calls
// while building an index.
const progressInterval = 2000

// Digest is a fixed-width content hash over a row's joined field values,
// used as a proxy for content equality.
type Digest [md5.Size]byte

// String returns the digest in hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// RowDigest computes the content digest of a field slice. It is
// deterministic and pure: two rows with equal fields in equal order always
// produce the same digest.
func RowDigest(fields []string) Digest {
	return md5.Sum([]byte(strings.Join(fields, digestSeparator)))
}

// HashIndex maps a row content digest to the ordered list of positions at
// which that content occurs in one table. A list longer than one signals
// duplicate content within the table.
type HashIndex map[Digest][]int

// ProgressFunc receives advisory progress during indexing and searching.
// It must not influence results. A nil ProgressFunc disables reporting.
type ProgressFunc func(done, total int)

// BuildIndex builds the digest index of a table in a single linear pass.
// The number of keys equals the table's distinct-row count.
func BuildIndex(t *table.Table, progress ProgressFunc) HashIndex {
	total := t.Len()
	index := make(HashIndex, total)

	for i := range t.Rows {
		d := RowDigest(t.Rows[i].Fields)
		index[d] = append(index[d], i)

		if progress != nil && ((i+1)%progressInterval == 0 || i == total-1) {
			progress(i+1, total)
		}
	}

	return index
}
