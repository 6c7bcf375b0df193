package table

import "strings"

// Row is an ordered sequence of field values at one position within a table.
type Row struct {
	// Position is the 0-based position of the row within its table.
	Position int

	// Fields holds the text values of the row, one per column.
	Fields []string
}

// Table is an ordered sequence of rows decoded from a single delimited file.
// It is owned by one comparison run and must not be modified after
// normalization.
type Table struct {
	// Path is the source file path.
	Path string

	// Delimiter is the field separator the file was split on.
	Delimiter string

	// Rows holds the decoded rows in file order.
	Rows []Row

	// Columns is the column count observed on the first row, after
	// excluded columns have been dropped.
	Columns int

	// Encoding is the name of the encoding that decoded the file.
	Encoding string

	// SizeBytes is the byte size of the source file.
	SizeBytes int64
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Line reconstructs the delimiter-joined content of the row at position i.
func (t *Table) Line(i int) string {
	return strings.Join(t.Rows[i].Fields, t.Delimiter)
}
