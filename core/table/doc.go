// Package table models a header-less delimited text file as an ordered table
// of string rows.
//
// The loader reads the source file once, tries an ordered list of candidate
// encodings (UTF-8, Latin-1, Windows-1252 by default) and splits each line on
// an arbitrary, possibly multi-character delimiter. Column exclusion is
// applied at load time so that every downstream consumer sees the same
// reduced arity.
//
// Normalization (whitespace trim, optional punctuation standardization) is a
// separate in-place pass so that both tables of a comparison can be prepared
// identically before hashing.
package table
