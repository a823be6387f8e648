package linebuffer

import "github.com/dshills/linestorm/internal/textseg"

// ClearRangeSafe removes the byte range [start, end). A reversed range is
// normalized and end is clamped to the buffer length.
//
// Cursor rule: unchanged when the cursor is before start; moved to start when
// it falls inside [start, end]; shifted left by the removed length when it is
// past end.
func (b *Buffer) ClearRangeSafe(start, end int) {
	b.ReplaceRange(start, end, "")
}

// ReplaceRange replaces the byte range [start, end) with s, with the same
// normalization and clamping as ClearRangeSafe. The cursor follows the
// ClearRangeSafe rule with len(s) standing in for the removed length when the
// cursor was past the range.
//
// Every deletion and replacement in this package routes through here; no
// other method adjusts the cursor against a mutation.
func (b *Buffer) ReplaceRange(start, end int, s string) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start > end {
		start = end
	}

	b.text = b.text[:start] + s + b.text[end:]

	switch {
	case b.insertionPoint < start:
		// Cursor before the range: untouched.
	case b.insertionPoint <= end:
		b.insertionPoint = start
	default:
		b.insertionPoint += len(s) - (end - start)
	}
}

// InsertChar inserts the rune c at the insertion point and moves the cursor
// past it.
func (b *Buffer) InsertChar(c rune) {
	b.InsertStr(string(c))
}

// InsertStr inserts s at the insertion point and moves the cursor past the
// inserted text. If the insertion fuses with following text into one grapheme
// cluster (e.g. a base letter inserted before a combining mark), the cursor
// advances to the cluster end to stay on a boundary.
func (b *Buffer) InsertStr(s string) {
	at := b.insertionPoint
	b.ReplaceRange(at, at, s)
	b.insertionPoint = at + len(s)
	if !textseg.IsGraphemeBoundary(b.text, b.insertionPoint) {
		b.insertionPoint = textseg.NextGraphemeBoundary(b.text, b.insertionPoint)
	}
}

// InsertNewline inserts a line break at the insertion point.
func (b *Buffer) InsertNewline() {
	b.InsertChar('\n')
}

// Clear removes all content and resets the cursor to 0.
func (b *Buffer) Clear() {
	b.ClearRangeSafe(0, len(b.text))
}

// ClearToEnd removes everything from the insertion point to the end of the
// buffer.
func (b *Buffer) ClearToEnd() {
	b.ClearRangeSafe(b.insertionPoint, len(b.text))
}

// ClearToInsertionPoint removes everything before the insertion point.
func (b *Buffer) ClearToInsertionPoint() {
	b.ClearRangeSafe(0, b.insertionPoint)
}

// ClearToLineEnd removes from the insertion point to the end of the current
// line content. The cursor stays at the deletion start.
func (b *Buffer) ClearToLineEnd() {
	b.ClearRangeSafe(b.insertionPoint, b.FindCurrentLineEnd())
}

// DeleteLeftGrapheme removes the grapheme cluster directly left of the
// insertion point. No-op at the buffer start.
func (b *Buffer) DeleteLeftGrapheme() {
	b.ClearRangeSafe(b.GraphemeLeftIndex(), b.insertionPoint)
}

// DeleteRightGrapheme removes the grapheme cluster directly right of the
// insertion point. No-op at the buffer end.
func (b *Buffer) DeleteRightGrapheme() {
	b.ClearRangeSafe(b.insertionPoint, b.GraphemeRightIndex())
}

// DeleteWordLeft removes from the start of the word left of the insertion
// point up to the insertion point.
func (b *Buffer) DeleteWordLeft() {
	b.ClearRangeSafe(b.WordLeftIndex(), b.insertionPoint)
}

// DeleteWordRight removes from the insertion point to the end of the word at
// or right of it.
func (b *Buffer) DeleteWordRight() {
	b.ClearRangeSafe(b.insertionPoint, b.WordRightIndex())
}
