package textseg

import "strings"

// LineStart returns the byte offset of the start of the line containing pos:
// the offset just past the previous '\n', or 0 on the first line.
func LineStart(s string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	if i := strings.LastIndexByte(s[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// LineContentEnd returns the byte offset of the end of the line content at or
// after pos: the offset of the next '\n', or len(s) if there is none. A '\r'
// directly before the '\n' is excluded from the content.
func LineContentEnd(s string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		return len(s)
	}
	nl := strings.IndexByte(s[pos:], '\n')
	if nl < 0 {
		return len(s)
	}
	end := pos + nl
	if end > 0 && s[end-1] == '\r' && end-1 >= pos {
		end--
	}
	return end
}

// LineCount returns the number of lines in s. An empty string is one line.
func LineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// LineIndex returns the 0-based index of the line containing pos.
func LineIndex(s string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	return strings.Count(s[:pos], "\n")
}
