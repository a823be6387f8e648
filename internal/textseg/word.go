package textseg

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RunClass tags a maximal run of same-class grapheme clusters.
type RunClass uint8

const (
	// ClassWhitespace covers Unicode whitespace, including line breaks.
	ClassWhitespace RunClass = iota

	// ClassWord covers letters, digits, and underscore.
	ClassWord

	// ClassPunct covers everything else: punctuation, symbols, and
	// standalone clusters such as emoji.
	ClassPunct
)

// Run is a maximal half-open byte range [Start, End) of clusters sharing one
// class.
type Run struct {
	Start int
	End   int
	Class RunClass
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// ClassifyRune returns the run class of a single rune.
func ClassifyRune(r rune) RunClass {
	switch {
	case unicode.IsSpace(r):
		return ClassWhitespace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return ClassWord
	default:
		return ClassPunct
	}
}

// Runs partitions s into maximal same-class runs. Runs never split a grapheme
// cluster; a cluster takes the class of its first rune, so a multi-codepoint
// emoji is one ClassPunct cluster rather than several.
func Runs(s string) []Run {
	var runs []Run

	off := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		first, _ := utf8.DecodeRuneInString(cluster)
		class := ClassifyRune(first)
		end := off + len(cluster)

		if n := len(runs); n > 0 && runs[n-1].Class == class {
			runs[n-1].End = end
		} else {
			runs = append(runs, Run{Start: off, End: end, Class: class})
		}

		off = end
		rest = tail
		state = newState
	}
	return runs
}

// WordUnits returns the word units of s in order: every non-whitespace run is
// its own unit, so a punctuation run counts as a word of its own.
func WordUnits(s string) []Span {
	runs := Runs(s)
	units := make([]Span, 0, len(runs))
	for _, r := range runs {
		if r.Class == ClassWhitespace {
			continue
		}
		units = append(units, Span{Start: r.Start, End: r.End})
	}
	return units
}

// BigWordUnits returns the big-word units of s: adjacent word and punctuation
// runs merge, so only whitespace separates units.
func BigWordUnits(s string) []Span {
	runs := Runs(s)
	units := make([]Span, 0, len(runs))
	for _, r := range runs {
		if r.Class == ClassWhitespace {
			continue
		}
		if n := len(units); n > 0 && units[n-1].End == r.Start {
			units[n-1].End = r.End
			continue
		}
		units = append(units, Span{Start: r.Start, End: r.End})
	}
	return units
}
