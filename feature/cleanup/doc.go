// Package cleanup provides single-file preparation utilities that run ahead
// of a comparison: encoding repair (Latin-1 to UTF-8), removal of one column
// from every line, and exact duplicate-line removal.
//
// Each utility streams the source file once and writes a sibling copy with a
// conventional suffix (_e, _R, _U); the source file is never modified.
package cleanup
