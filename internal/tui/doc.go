// Package tui is a small terminal front end for the editor. It renders the
// buffer with tcell, maps keys to editing commands, and places the terminal
// cursor on the cell of the grapheme cluster at the insertion point.
package tui
