// Package inspect answers the question "do these two specific lines carry
// the same data?" without running a full comparison. It reuses the loader's
// encoding fallback and the comparator's normalization and digest so the
// verdict always agrees with what a full run would classify.
package inspect
