// Package render serializes a comparison report into its output artifacts.
//
// Rendering is a collaborator of the engine, not part of it: the engine
// hands over one immutable Report value and this package turns it into a
// Markdown document and, optionally, a plain-text listing of the rows that
// were not found in the second file.
package render
