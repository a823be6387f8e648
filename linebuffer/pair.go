package linebuffer

// Pair holds the offsets of a balanced delimiter pair.
type Pair struct {
	Left  int
	Right int
}

// FindMatchingPair scans the buffer once, stacking unmatched left-delimiter
// offsets; each right delimiter pops the most recent unmatched left offset.
// The pair whose left or right offset equals cursor is returned. Unmatched
// right delimiters are skipped and unmatched left delimiters never match, so
// the result under nesting is the innermost balanced pair touching cursor.
func (b *Buffer) FindMatchingPair(left, right rune, cursor int) (Pair, bool) {
	var stack []int
	for i, r := range b.text {
		switch r {
		case left:
			stack = append(stack, i)
		case right:
			if len(stack) == 0 {
				continue
			}
			l := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if l == cursor || i == cursor {
				return Pair{Left: l, Right: i}, true
			}
		}
	}
	return Pair{}, false
}
