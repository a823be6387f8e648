// Package textseg provides the stateless text segmentation primitives used by
// the line buffer: extended grapheme cluster boundaries (UAX #29, via
// rivo/uniseg), word classification into whitespace/word/punctuation runs, and
// newline-delimited line offsets.
//
// All functions take a string plus byte offsets and hold no state. Callers
// re-run them per operation; inputs are short interactive buffers, so the
// O(length) scans are cheap and keep the buffer free of cached indices.
package textseg
