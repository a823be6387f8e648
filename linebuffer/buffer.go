package linebuffer

import (
	"unicode/utf8"

	"github.com/dshills/linestorm/internal/textseg"
)

// Buffer is a multi-line text buffer with a single insertion point. The
// insertion point is a byte offset that stays aligned to grapheme cluster
// boundaries through every mutating operation.
//
// The zero value is an empty buffer with the insertion point at 0.
type Buffer struct {
	text           string
	insertionPoint int
}

// Range is a half-open byte range [Start, End) into the buffer text.
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromString creates a buffer holding s with the insertion point at the
// end.
func NewFromString(s string) *Buffer {
	return &Buffer{text: s, insertionPoint: len(s)}
}

// Text returns the buffer content.
func (b *Buffer) Text() string { return b.text }

// Len returns the byte length of the buffer content.
func (b *Buffer) Len() int { return len(b.text) }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return len(b.text) == 0 }

// InsertionPoint returns the cursor offset.
func (b *Buffer) InsertionPoint() int { return b.insertionPoint }

// clampedInsertionPoint bounds the insertion point into [0, len(text)].
// SetInsertionPoint is unchecked, so read paths that slice the text must not
// trust the stored offset.
func (b *Buffer) clampedInsertionPoint() int {
	if b.insertionPoint < 0 {
		return 0
	}
	if b.insertionPoint > len(b.text) {
		return len(b.text)
	}
	return b.insertionPoint
}

// SetInsertionPoint assigns the cursor offset directly. The value is not
// checked or corrected; an out-of-range or off-boundary assignment is
// detectable afterwards via IsValid or Validate.
func (b *Buffer) SetInsertionPoint(pos int) {
	b.insertionPoint = pos
}

// SetText replaces the whole buffer content and moves the insertion point to
// the new end.
func (b *Buffer) SetText(s string) {
	b.text = s
	b.insertionPoint = len(s)
}

// IsCursorAtEnd reports whether the insertion point sits at the end of the
// buffer.
func (b *Buffer) IsCursorAtEnd() bool { return b.insertionPoint == len(b.text) }

// EndsWith reports whether the buffer content ends with the rune r.
func (b *Buffer) EndsWith(r rune) bool {
	last, _ := utf8.DecodeLastRuneInString(b.text)
	return len(b.text) > 0 && last == r
}

// NumLines returns the number of lines in the buffer. An empty buffer has one
// line.
func (b *Buffer) NumLines() int {
	return textseg.LineCount(b.text)
}

// Line returns the 0-based index of the line holding the insertion point.
func (b *Buffer) Line() int {
	return textseg.LineIndex(b.text, b.insertionPoint)
}

// IsCursorAtFirstLine reports whether the insertion point is on the first
// line.
func (b *Buffer) IsCursorAtFirstLine() bool {
	return b.Line() == 0
}

// IsCursorAtLastLine reports whether the insertion point is on the last line.
func (b *Buffer) IsCursorAtLastLine() bool {
	return b.Line() == b.NumLines()-1
}

// IsValid reports whether the insertion point is inside [0, Len()] and on a
// grapheme cluster boundary.
func (b *Buffer) IsValid() bool {
	return b.Validate() == nil
}

// Validate returns a descriptive error when the insertion point is out of
// range or off a grapheme cluster boundary, and nil otherwise.
func (b *Buffer) Validate() error {
	if b.insertionPoint < 0 || b.insertionPoint > len(b.text) {
		return ErrInsertionPointOutOfRange
	}
	if !textseg.IsGraphemeBoundary(b.text, b.insertionPoint) {
		return ErrInsertionPointOffBoundary
	}
	return nil
}
