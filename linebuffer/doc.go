// Package linebuffer provides a cursor-addressed, multi-line text buffer for
// interactive line editing.
//
// A Buffer owns a single mutable text plus one insertion point. The insertion
// point is a byte offset into the text and always lies on an extended grapheme
// cluster boundary; every mutating operation preserves that alignment. The
// buffer supports several distinct editing units, each with its own boundary
// rules:
//
//   - Grapheme: an extended grapheme cluster (UAX #29), the smallest
//     user-perceived character.
//   - Word: a maximal run of letters, digits, and underscore, or a maximal
//     run of other non-whitespace clusters (punctuation counts as a word of
//     its own).
//   - BigWord: word and punctuation runs merged, so only whitespace separates
//     units.
//   - Line: a maximal run delimited by '\n' (a directly preceding '\r' is not
//     part of the line content).
//
// All deletions and replacements route through two range primitives,
// ClearRangeSafe and ReplaceRange, which own the cursor adjustment rules.
// Higher-level operations never do their own offset arithmetic.
//
// Operations with no valid target (word motions on an empty buffer, swaps at
// a buffer edge) are identity transforms. Searches report absence through an
// ok result instead of an error. Directly assigning an out-of-range or
// off-boundary insertion point is permitted but not auto-corrected; use
// IsValid or Validate to detect such a state.
//
// A Buffer is not safe for concurrent use. It models one interactive editing
// session and expects the caller to serialize access.
package linebuffer
