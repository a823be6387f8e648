// Package editor layers an undo history, a clipboard, and kill-ring style cut
// and paste operations on top of the linebuffer primitives, and exposes the
// whole surface as a single Apply entry point driven by Command values.
package editor
