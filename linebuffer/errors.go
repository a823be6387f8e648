package linebuffer

import "errors"

// Errors reported by validity checks.
var (
	// ErrInsertionPointOutOfRange indicates the insertion point is outside
	// [0, len(text)].
	ErrInsertionPointOutOfRange = errors.New("insertion point out of range")

	// ErrInsertionPointOffBoundary indicates the insertion point does not lie
	// on a grapheme cluster boundary.
	ErrInsertionPointOffBoundary = errors.New("insertion point not on a grapheme boundary")
)
