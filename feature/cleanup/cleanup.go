package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// maxLineSize bounds single-line buffers while streaming large extracts.
const maxLineSize = 4 * 1024 * 1024

// FixResult summarizes an encoding repair run.
type FixResult struct {
	// Output is the path of the repaired UTF-8 copy.
	Output string
	// Lines is the number of lines written.
	Lines int
}

// RemoveResult summarizes a column removal run.
type RemoveResult struct {
	// Output is the path of the rewritten copy.
	Output string
	// Lines is the number of lines processed.
	Lines int
}

// DedupeResult summarizes a duplicate-line removal run.
type DedupeResult struct {
	// Output is the path of the deduplicated copy.
	Output string
	// Unique is the number of distinct lines kept.
	Unique int
	// Duplicates is the number of repeated lines dropped.
	Duplicates int
}

// DerivedPath builds the conventional output path for a single-file
// utility: the source path with a suffix inserted before the extension,
// e.g. DerivedPath("data.txt", "_U") == "data_U.txt".
func DerivedPath(src, suffix string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + suffix + ext
}

// FixEncoding rewrites a file assumed to be Latin-1 encoded as a UTF-8 copy
// at dst. A partially written destination is removed on failure.
func FixEncoding(src, dst string) (*FixResult, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", dst, err)
	}

	res := &FixResult{Output: dst}
	scanner := newLineScanner(transform.NewReader(in, charmap.ISO8859_1.NewDecoder()))
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		if _, err := w.WriteString(scanner.Text() + "\n"); err != nil {
			return nil, abortOutput(out, dst, err)
		}
		res.Lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := w.Flush(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("closing %s: %w", dst, err)
	}

	return res, nil
}

// RemoveColumn copies src to dst dropping one 0-based column from every
// line. Lines with fewer columns than the index pass through unchanged.
func RemoveColumn(src, dst, delimiter string, column int) (*RemoveResult, error) {
	if column < 0 {
		return nil, fmt.Errorf("column index must not be negative, got %d", column)
	}

	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", dst, err)
	}

	res := &RemoveResult{Output: dst}
	scanner := newLineScanner(in)
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), delimiter)
		if column < len(fields) {
			fields = append(fields[:column], fields[column+1:]...)
		}
		if _, err := w.WriteString(strings.Join(fields, delimiter) + "\n"); err != nil {
			return nil, abortOutput(out, dst, err)
		}
		res.Lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := w.Flush(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("closing %s: %w", dst, err)
	}

	return res, nil
}

// DedupeLines copies src to dst keeping only the first occurrence of each
// exact line.
func DedupeLines(src, dst string) (*DedupeResult, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", dst, err)
	}

	res := &DedupeResult{Output: dst}
	seen := make(map[string]struct{})
	scanner := newLineScanner(in)
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		line := scanner.Text()
		if _, dup := seen[line]; dup {
			res.Duplicates++
			continue
		}
		seen[line] = struct{}{}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return nil, abortOutput(out, dst, err)
		}
		res.Unique++
	}
	if err := scanner.Err(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := w.Flush(); err != nil {
		return nil, abortOutput(out, dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("closing %s: %w", dst, err)
	}

	return res, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// abortOutput closes and removes a half-written destination file.
func abortOutput(out *os.File, dst string, err error) error {
	out.Close()
	os.Remove(dst)
	return fmt.Errorf("writing %s: %w", dst, err)
}
