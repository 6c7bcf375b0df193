package table

import "strings"

// Normalize rewrites every field of every row in place.
//
// Leading and trailing whitespace is always stripped. When punctuation is
// true the fields are additionally standardized: commas become periods,
// non-breaking and ordinary spaces are removed, and any character outside
// the allowed set [a-zA-Z0-9 .,;:_()/-] is replaced with a period.
//
// Normalization never changes row arity and must be applied identically to
// both tables of a comparison before any content is indexed.
func Normalize(t *Table, punctuation bool) {
	for i := range t.Rows {
		fields := t.Rows[i].Fields
		for j := range fields {
			fields[j] = normalizeField(fields[j], punctuation)
		}
	}
}

func normalizeField(s string, punctuation bool) string {
	s = strings.TrimSpace(s)
	if !punctuation {
		return s
	}

	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '\t', '.', ',', ';', ':', '_', '(', ')', '/', '-':
		return true
	}
	return false
}
