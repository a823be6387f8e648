package linebuffer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/linestorm/internal/textseg"
)

// CapitalizeChar uppercases the grapheme at the insertion point and moves the
// cursor past it. Full Unicode case mappings apply, so the replacement may
// differ in byte length from the original. No-op at the buffer end.
func (b *Buffer) CapitalizeChar() {
	start := b.clampedInsertionPoint()
	end := textseg.NextGraphemeBoundary(b.text, start)
	if end == start {
		return
	}

	up := cases.Upper(language.Und).String(b.text[start:end])
	b.ReplaceRange(start, end, up)
	b.setBoundary(start + len(up))
}

// UppercaseWord uppercases from the insertion point to the end of the current
// or next word and moves the cursor there.
func (b *Buffer) UppercaseWord() {
	b.recaseWord(cases.Upper(language.Und))
}

// LowercaseWord lowercases from the insertion point to the end of the current
// or next word and moves the cursor there.
func (b *Buffer) LowercaseWord() {
	b.recaseWord(cases.Lower(language.Und))
}

func (b *Buffer) recaseWord(c cases.Caser) {
	start := b.clampedInsertionPoint()
	end := b.WordRightIndex()
	if end <= start {
		return
	}

	replaced := c.String(b.text[start:end])
	b.ReplaceRange(start, end, replaced)
	b.setBoundary(start + len(replaced))
}

// SwitchcaseChar toggles the case of each codepoint in the grapheme at the
// insertion point and moves the cursor past it. No-op at the buffer end.
func (b *Buffer) SwitchcaseChar() {
	start := b.clampedInsertionPoint()
	end := textseg.NextGraphemeBoundary(b.text, start)
	if end == start {
		return
	}

	toggled := strings.Map(toggleCase, b.text[start:end])
	b.ReplaceRange(start, end, toggled)
	b.setBoundary(start + len(toggled))
}

func toggleCase(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	default:
		return r
	}
}

// SwapGraphemes exchanges the graphemes left and right of the insertion
// point. At the buffer start the cursor first steps right, at the buffer end
// it first steps left, so the swap acts on the first or last pair. The cursor
// ends between the swapped graphemes. No-op when the buffer holds fewer than
// two graphemes.
func (b *Buffer) SwapGraphemes() {
	if textseg.GraphemeCount(b.text) < 2 {
		return
	}

	b.insertionPoint = b.clampedInsertionPoint()
	switch b.insertionPoint {
	case 0:
		b.MoveRight()
	case len(b.text):
		b.MoveLeft()
	}

	ip := b.insertionPoint
	left := b.GraphemeLeftIndex()
	right := b.GraphemeRightIndex()
	if left == ip || right == ip {
		return
	}

	lg := b.text[left:ip]
	rg := b.text[ip:right]
	b.ReplaceRange(ip, right, lg)
	b.ReplaceRange(left, ip, rg)
	b.insertionPoint = left + len(rg)
}

// SwapWords exchanges the span of the current word with the span of the next
// word and places the cursor after the swapped pair. No-op when fewer than
// two words lie at or after the insertion point.
func (b *Buffer) SwapWords() {
	cur, ok := b.CurrentWordRange()
	if !ok {
		return
	}
	next, ok := b.NextWordRange()
	if !ok {
		return
	}

	w1 := b.text[cur.Start:cur.End]
	w2 := b.text[next.Start:next.End]
	b.ReplaceRange(next.Start, next.End, w1)
	b.ReplaceRange(cur.Start, cur.End, w2)

	// Total length is unchanged, so the second span still ends at next.End.
	b.insertionPoint = next.End
}

// setBoundary assigns pos, advancing to the next grapheme boundary when a
// replacement fused with following text into one cluster.
func (b *Buffer) setBoundary(pos int) {
	if !textseg.IsGraphemeBoundary(b.text, pos) {
		pos = textseg.NextGraphemeBoundary(b.text, pos)
	}
	b.insertionPoint = pos
}
