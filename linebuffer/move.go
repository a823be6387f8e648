package linebuffer

import (
	"strings"

	"github.com/dshills/linestorm/internal/textseg"
)

// Grapheme navigation

// GraphemeRightIndex returns the grapheme boundary right of the insertion
// point, clamped to the buffer length.
func (b *Buffer) GraphemeRightIndex() int {
	return textseg.NextGraphemeBoundary(b.text, b.insertionPoint)
}

// GraphemeLeftIndex returns the grapheme boundary left of the insertion
// point, clamped to 0.
func (b *Buffer) GraphemeLeftIndex() int {
	return textseg.PrevGraphemeBoundary(b.text, b.insertionPoint)
}

// MoveRight moves the insertion point one grapheme right.
func (b *Buffer) MoveRight() {
	b.insertionPoint = b.GraphemeRightIndex()
}

// MoveLeft moves the insertion point one grapheme left.
func (b *Buffer) MoveLeft() {
	b.insertionPoint = b.GraphemeLeftIndex()
}

// MoveToStart moves the insertion point to the start of the buffer.
func (b *Buffer) MoveToStart() {
	b.insertionPoint = 0
}

// MoveToEnd moves the insertion point to the end of the buffer.
func (b *Buffer) MoveToEnd() {
	b.insertionPoint = len(b.text)
}

// Word navigation
//
// The index queries return the would-be cursor position without moving; the
// Move* methods assign it. Words and big-words are the unit spans produced by
// the word classifier, so every query degrades to a no-op position (0 or the
// buffer length) on an empty buffer.

// WordLeftIndex returns the start of the nearest word unit beginning before
// the insertion point. Inside a unit this is the unit's own start.
func (b *Buffer) WordLeftIndex() int {
	return unitLeftIndex(textseg.WordUnits(b.text), b.insertionPoint)
}

// BigWordLeftIndex is WordLeftIndex over big-word units.
func (b *Buffer) BigWordLeftIndex() int {
	return unitLeftIndex(textseg.BigWordUnits(b.text), b.insertionPoint)
}

// WordRightIndex returns the position one past the end of the word unit at or
// right of the insertion point, or the buffer length if there is none.
func (b *Buffer) WordRightIndex() int {
	return unitRightIndex(textseg.WordUnits(b.text), b.insertionPoint, len(b.text))
}

// BigWordRightIndex is WordRightIndex over big-word units.
func (b *Buffer) BigWordRightIndex() int {
	return unitRightIndex(textseg.BigWordUnits(b.text), b.insertionPoint, len(b.text))
}

// WordRightStartIndex returns the start of the next word unit beginning after
// the insertion point, or the buffer length if there is none.
func (b *Buffer) WordRightStartIndex() int {
	return unitRightStartIndex(textseg.WordUnits(b.text), b.insertionPoint, len(b.text))
}

// BigWordRightStartIndex is WordRightStartIndex over big-word units.
func (b *Buffer) BigWordRightStartIndex() int {
	return unitRightStartIndex(textseg.BigWordUnits(b.text), b.insertionPoint, len(b.text))
}

// WordRightEndIndex returns the start of the last grapheme of the word unit
// whose final grapheme lies right of the insertion point, or the buffer
// length if there is none.
func (b *Buffer) WordRightEndIndex() int {
	return b.unitRightEndIndex(textseg.WordUnits(b.text))
}

// BigWordRightEndIndex is WordRightEndIndex over big-word units.
func (b *Buffer) BigWordRightEndIndex() int {
	return b.unitRightEndIndex(textseg.BigWordUnits(b.text))
}

// MoveWordLeft moves to the start of the word unit left of the insertion
// point.
func (b *Buffer) MoveWordLeft() { b.insertionPoint = b.WordLeftIndex() }

// MoveBigWordLeft moves to the start of the big-word unit left of the
// insertion point.
func (b *Buffer) MoveBigWordLeft() { b.insertionPoint = b.BigWordLeftIndex() }

// MoveWordRight moves one past the end of the word unit at or right of the
// insertion point.
func (b *Buffer) MoveWordRight() { b.insertionPoint = b.WordRightIndex() }

// MoveBigWordRight moves one past the end of the big-word unit at or right of
// the insertion point.
func (b *Buffer) MoveBigWordRight() { b.insertionPoint = b.BigWordRightIndex() }

// MoveWordRightStart moves to the start of the next word unit.
func (b *Buffer) MoveWordRightStart() { b.insertionPoint = b.WordRightStartIndex() }

// MoveBigWordRightStart moves to the start of the next big-word unit.
func (b *Buffer) MoveBigWordRightStart() { b.insertionPoint = b.BigWordRightStartIndex() }

// MoveWordRightEnd moves onto the last grapheme of the current or next word
// unit.
func (b *Buffer) MoveWordRightEnd() { b.insertionPoint = b.WordRightEndIndex() }

// MoveBigWordRightEnd moves onto the last grapheme of the current or next
// big-word unit.
func (b *Buffer) MoveBigWordRightEnd() { b.insertionPoint = b.BigWordRightEndIndex() }

// CurrentWordRange returns the span of the word unit containing the insertion
// point, or the next unit after it when the cursor sits on whitespace. ok is
// false when no unit lies at or after the cursor.
func (b *Buffer) CurrentWordRange() (Range, bool) {
	for _, u := range textseg.WordUnits(b.text) {
		if u.End > b.insertionPoint {
			return Range{Start: u.Start, End: u.End}, true
		}
	}
	return Range{}, false
}

// NextWordRange returns the span of the first word unit beginning after the
// end of the current word range.
func (b *Buffer) NextWordRange() (Range, bool) {
	cur, ok := b.CurrentWordRange()
	if !ok {
		return Range{}, false
	}
	for _, u := range textseg.WordUnits(b.text) {
		if u.Start >= cur.End {
			return Range{Start: u.Start, End: u.End}, true
		}
	}
	return Range{}, false
}

func unitLeftIndex(units []textseg.Span, pos int) int {
	idx := 0
	for _, u := range units {
		if u.Start >= pos {
			break
		}
		idx = u.Start
	}
	return idx
}

func unitRightIndex(units []textseg.Span, pos, bufLen int) int {
	for _, u := range units {
		if u.End > pos {
			return u.End
		}
	}
	return bufLen
}

func unitRightStartIndex(units []textseg.Span, pos, bufLen int) int {
	for _, u := range units {
		if u.Start > pos {
			return u.Start
		}
	}
	return bufLen
}

func (b *Buffer) unitRightEndIndex(units []textseg.Span) int {
	for _, u := range units {
		last := textseg.PrevGraphemeBoundary(b.text, u.End)
		if last < u.Start {
			last = u.Start
		}
		if last > b.insertionPoint {
			return last
		}
	}
	return len(b.text)
}

// Line navigation

// FindCurrentLineStart returns the offset of the start of the line holding
// the insertion point.
func (b *Buffer) FindCurrentLineStart() int {
	return textseg.LineStart(b.text, b.insertionPoint)
}

// FindCurrentLineEnd returns the offset of the end of the current line
// content: the next '\n' (excluding a directly preceding '\r'), or the buffer
// length.
func (b *Buffer) FindCurrentLineEnd() int {
	return textseg.LineContentEnd(b.text, b.insertionPoint)
}

// CurrentLineRange returns the content span of the line holding the insertion
// point.
func (b *Buffer) CurrentLineRange() Range {
	return Range{Start: b.FindCurrentLineStart(), End: b.FindCurrentLineEnd()}
}

// MoveToLineStart moves the insertion point to the start of the current line.
func (b *Buffer) MoveToLineStart() {
	b.insertionPoint = b.FindCurrentLineStart()
}

// MoveToLineEnd moves the insertion point to the end of the current line
// content.
func (b *Buffer) MoveToLineEnd() {
	b.insertionPoint = b.FindCurrentLineEnd()
}

// MoveLineUp moves the insertion point to the previous line. The landing
// column is one grapheme left of the origin column (clamped to the line
// content), matching historical readline behavior. No-op on the first line.
func (b *Buffer) MoveLineUp() {
	if b.IsCursorAtFirstLine() {
		return
	}

	ip := b.clampedInsertionPoint()
	start := b.FindCurrentLineStart()
	col := textseg.GraphemeCount(b.text[start:ip])
	if col > 0 {
		col--
	}

	prevStart := textseg.LineStart(b.text, start-1)
	prevEnd := textseg.LineContentEnd(b.text, prevStart)
	b.insertionPoint = textseg.AdvanceGraphemes(b.text, prevStart, col, prevEnd)
}

// MoveLineDown moves the insertion point to the same grapheme column on the
// next line, clamped to that line's content. No-op on the last line.
func (b *Buffer) MoveLineDown() {
	if b.IsCursorAtLastLine() {
		return
	}

	ip := b.clampedInsertionPoint()
	start := b.FindCurrentLineStart()
	col := textseg.GraphemeCount(b.text[start:ip])

	nl := strings.IndexByte(b.text[ip:], '\n')
	nextStart := ip + nl + 1
	nextEnd := textseg.LineContentEnd(b.text, nextStart)
	b.insertionPoint = textseg.AdvanceGraphemes(b.text, nextStart, col, nextEnd)
}

// Character search

// FindCharRight returns the offset of the first occurrence of c after the
// grapheme at the insertion point. ok is false when c does not occur.
func (b *Buffer) FindCharRight(c rune) (int, bool) {
	from := b.GraphemeRightIndex()
	if from >= len(b.text) {
		return 0, false
	}
	idx := strings.IndexRune(b.text[from:], c)
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}

// FindCharLeft returns the offset of the last occurrence of c before the
// insertion point. ok is false when c does not occur.
func (b *Buffer) FindCharLeft(c rune) (int, bool) {
	idx := strings.LastIndex(b.text[:b.clampedInsertionPoint()], string(c))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
