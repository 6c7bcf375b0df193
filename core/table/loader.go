package table

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedEncoding is returned when none of the candidate encodings
// can decode the source file.
var ErrUnsupportedEncoding = errors.New("no candidate encoding could decode the file")

// DefaultEncodings is the ordered encoding fallback list used when none is
// configured.
var DefaultEncodings = []string{"utf-8", "latin1", "cp1252"}

// LoadOptions controls how a delimited file is decoded into a Table.
type LoadOptions struct {
	// Delimiter is the field separator. It may be multi-character.
	Delimiter string

	// Encodings is the ordered list of candidate encodings. The first one
	// that decodes the file without error wins. Defaults to
	// DefaultEncodings when empty.
	Encodings []string

	// ExcludeColumns lists 0-based column indices to drop from every row.
	ExcludeColumns []int
}

// Load decodes a header-less delimited file into a Table.
//
// The file is read once. Candidate encodings are tried in order; decoding
// succeeds on the first encoding that accepts the full byte content. Excluded
// columns are dropped from every row, order-preserving over the remaining
// indices. Blank lines are skipped.
func Load(path string, opts LoadOptions) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	encodings := opts.Encodings
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	text, used, err := decodeWithFallback(data, encodings)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	t := &Table{
		Path:      path,
		Delimiter: opts.Delimiter,
		Encoding:  used,
		SizeBytes: info.Size(),
	}

	exclude := excludeSet(opts.ExcludeColumns)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, opts.Delimiter)
		if len(exclude) > 0 {
			fields = dropColumns(fields, exclude)
		}

		t.Rows = append(t.Rows, Row{Position: len(t.Rows), Fields: fields})
	}

	if len(t.Rows) > 0 {
		t.Columns = len(t.Rows[0].Fields)
	}

	return t, nil
}

// decodeWithFallback tries each candidate encoding in order and returns the
// decoded text plus the name of the encoding that succeeded.
func decodeWithFallback(data []byte, encodings []string) (string, string, error) {
	for _, name := range encodings {
		text, err := decode(data, name)
		if err != nil {
			continue
		}
		return text, name, nil
	}
	return "", "", ErrUnsupportedEncoding
}

func decode(data []byte, name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 byte sequence")
		}
		return string(data), nil
	case "latin1", "iso-8859-1":
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "cp1252", "windows-1252":
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}

// excludeSet deduplicates the excluded column list into a lookup set.
func excludeSet(cols []int) map[int]struct{} {
	if len(cols) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	return set
}

// dropColumns removes the excluded indices from a field slice, keeping the
// remaining fields in their original order. Out-of-range indices are ignored.
func dropColumns(fields []string, exclude map[int]struct{}) []string {
	kept := make([]string, 0, len(fields))
	for i, f := range fields {
		if _, drop := exclude[i]; drop {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// NormalizeExcluded returns a sorted, deduplicated copy of a column exclusion
// list, suitable for echoing back in reports.
func NormalizeExcluded(cols []int) []int {
	if len(cols) == 0 {
		return nil
	}
	set := excludeSet(cols)
	out := make([]int, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}
