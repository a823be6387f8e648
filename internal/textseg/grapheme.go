package textseg

import "github.com/rivo/uniseg"

// NextGraphemeBoundary returns the byte offset of the nearest grapheme cluster
// boundary strictly after pos, clamped to len(s). If pos falls inside a
// cluster, the cluster's end is returned.
func NextGraphemeBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	if pos < 0 {
		pos = 0
	}

	off := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		end := off + len(cluster)
		if end > pos {
			return end
		}
		off = end
		rest = tail
		state = newState
	}
	return len(s)
}

// PrevGraphemeBoundary returns the byte offset of the nearest grapheme cluster
// boundary strictly before pos, clamped to 0.
func PrevGraphemeBoundary(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(s) {
		pos = len(s)
	}

	off := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		end := off + len(cluster)
		if end >= pos {
			return off
		}
		off = end
		rest = tail
		state = newState
	}
	return off
}

// IsGraphemeBoundary reports whether pos lies on a grapheme cluster boundary
// of s. Both 0 and len(s) are boundaries; offsets outside [0, len(s)] are not.
func IsGraphemeBoundary(s string, pos int) bool {
	if pos == 0 || pos == len(s) {
		return true
	}
	if pos < 0 || pos > len(s) {
		return false
	}

	off := 0
	state := -1
	rest := s
	for len(rest) > 0 && off < pos {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		off += len(cluster)
		rest = tail
		state = newState
	}
	return off == pos
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeAt returns the grapheme cluster beginning at byte offset pos, or ""
// if pos is out of range.
func GraphemeAt(s string, pos int) string {
	if pos < 0 || pos >= len(s) {
		return ""
	}
	return s[pos:NextGraphemeBoundary(s, pos)]
}

// AdvanceGraphemes moves forward from pos by up to n grapheme boundaries,
// never beyond limit. pos and limit must be boundaries of s.
func AdvanceGraphemes(s string, pos, n, limit int) int {
	for i := 0; i < n && pos < limit; i++ {
		pos = NextGraphemeBoundary(s, pos)
	}
	if pos > limit {
		pos = limit
	}
	return pos
}
