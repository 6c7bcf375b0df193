package inspect

import (
	"fmt"

	"table-compare/core/compare"
	"table-compare/core/table"
)

// LineReport holds everything known about one inspected line.
type LineReport struct {
	// Path is the source file.
	Path string
	// LineNumber is the 1-based line number that was inspected.
	LineNumber int
	// Original is the line content as read from the file.
	Original string
	// Fields holds the normalized field values.
	Fields []string
	// Digest is the content digest over the normalized fields.
	Digest compare.Digest
}

// Comparison pairs two line reports with their digest verdict.
type Comparison struct {
	Line1 LineReport
	Line2 LineReport
	// Equal is true when both digests match, meaning the two lines carry
	// the same data after normalization.
	Equal bool
}

// Options controls how inspected lines are processed.
type Options struct {
	// Delimiter is the field separator.
	Delimiter string
	// Encodings is the ordered encoding fallback list; the loader default
	// applies when empty.
	Encodings []string
	// NormalizePunctuation applies the comparator's punctuation rules in
	// addition to whitespace trimming.
	NormalizePunctuation bool
}

// Line loads one file with the loader's encoding fallback, picks the
// requested 1-based line, normalizes its fields the way the comparator
// would, and reports its digest.
func Line(path string, lineNumber int, opts Options) (*LineReport, error) {
	if lineNumber < 1 {
		return nil, fmt.Errorf("line number must be 1 or greater, got %d", lineNumber)
	}

	t, err := table.Load(path, table.LoadOptions{
		Delimiter: opts.Delimiter,
		Encodings: opts.Encodings,
	})
	if err != nil {
		return nil, err
	}

	idx := lineNumber - 1
	if idx >= t.Len() {
		return nil, fmt.Errorf("line %d not found in %s: file has %d lines", lineNumber, path, t.Len())
	}

	original := t.Line(idx)
	table.Normalize(t, opts.NormalizePunctuation)

	return &LineReport{
		Path:       path,
		LineNumber: lineNumber,
		Original:   original,
		Fields:     t.Rows[idx].Fields,
		Digest:     compare.RowDigest(t.Rows[idx].Fields),
	}, nil
}

// Lines inspects one line in each file and compares their digests.
func Lines(path1 string, line1 int, path2 string, line2 int, opts Options) (*Comparison, error) {
	r1, err := Line(path1, line1, opts)
	if err != nil {
		return nil, err
	}
	r2, err := Line(path2, line2, opts)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Line1: *r1,
		Line2: *r2,
		Equal: r1.Digest == r2.Digest,
	}, nil
}
