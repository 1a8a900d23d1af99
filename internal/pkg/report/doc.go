// Package report parses hexadecimal messages and renders round trip
// transcripts, either as the two-line summary or as the annotated diagram.
package report
