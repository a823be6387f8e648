package editor

import (
	"errors"

	"github.com/dshills/linestorm/internal/textseg"
	"github.com/dshills/linestorm/linebuffer"
)

var (
	// ErrNothingToUndo indicates an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo indicates an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxUndoEntries bounds the undo stack when Options does not.
const DefaultMaxUndoEntries = 1000

// snapshot captures the full buffer state at an undo point.
type snapshot struct {
	text           string
	insertionPoint int
}

// opKind classifies the previous mutation so that runs of typing or runs of
// grapheme deletes collapse into a single undo entry.
type opKind uint8

const (
	opNone opKind = iota
	opInsert
	opDelete
	opOther
)

// Options configures a new Editor.
type Options struct {
	// Clipboard receives cut and copied payloads. Defaults to an in-process
	// clipboard when nil.
	Clipboard Clipboard

	// MaxUndoEntries bounds the undo stack. Zero selects
	// DefaultMaxUndoEntries.
	MaxUndoEntries int

	// Text is the initial buffer content. The insertion point starts at the
	// end of it.
	Text string
}

// Editor wraps a line buffer with an undo history and a clipboard, and layers
// the kill and paste operations on top of the buffer primitives.
type Editor struct {
	buf       *linebuffer.Buffer
	clip      Clipboard
	undoStack []snapshot
	redoStack []snapshot
	maxUndo   int
	last      opKind
}

// New creates an Editor from opts.
func New(opts Options) *Editor {
	clip := opts.Clipboard
	if clip == nil {
		clip = NewLocalClipboard()
	}
	maxUndo := opts.MaxUndoEntries
	if maxUndo <= 0 {
		maxUndo = DefaultMaxUndoEntries
	}
	return &Editor{
		buf:     linebuffer.NewFromString(opts.Text),
		clip:    clip,
		maxUndo: maxUndo,
	}
}

// Buffer exposes the underlying line buffer. Mutations made directly on it
// bypass the undo history.
func (e *Editor) Buffer() *linebuffer.Buffer {
	return e.buf
}

// Clipboard returns the editor's clipboard.
func (e *Editor) Clipboard() Clipboard {
	return e.clip
}

// SetMaxUndoEntries changes the undo stack bound, discarding the oldest
// entries if the stack already exceeds it. Values below one select
// DefaultMaxUndoEntries.
func (e *Editor) SetMaxUndoEntries(n int) {
	if n <= 0 {
		n = DefaultMaxUndoEntries
	}
	e.maxUndo = n
	if len(e.undoStack) > n {
		e.undoStack = e.undoStack[len(e.undoStack)-n:]
	}
}

func (e *Editor) capture() snapshot {
	return snapshot{text: e.buf.Text(), insertionPoint: e.buf.InsertionPoint()}
}

func (e *Editor) restore(s snapshot) {
	e.buf.SetText(s.text)
	e.buf.SetInsertionPoint(s.insertionPoint)
}

// checkpoint records the current state before a mutation of the given kind.
// Consecutive mutations of the same groupable kind share one undo entry.
func (e *Editor) checkpoint(kind opKind) {
	grouped := (kind == opInsert || kind == opDelete) && kind == e.last
	e.last = kind
	if grouped {
		return
	}
	e.undoStack = append(e.undoStack, e.capture())
	if len(e.undoStack) > e.maxUndo {
		e.undoStack = e.undoStack[len(e.undoStack)-e.maxUndo:]
	}
	e.redoStack = e.redoStack[:0]
}

// breakGroup ends any in-progress insert or delete run so the next mutation
// starts a fresh undo entry. Movement calls this.
func (e *Editor) breakGroup() {
	e.last = opNone
}

// Undo restores the state before the most recent undo entry.
func (e *Editor) Undo() error {
	if len(e.undoStack) == 0 {
		return ErrNothingToUndo
	}
	top := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, e.capture())
	e.restore(top)
	e.last = opNone
	return nil
}

// Redo reapplies the most recently undone entry.
func (e *Editor) Redo() error {
	if len(e.redoStack) == 0 {
		return ErrNothingToRedo
	}
	top := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, e.capture())
	e.restore(top)
	e.last = opNone
	return nil
}

// InsertChar inserts c at the insertion point. Consecutive insertions undo as
// one unit.
func (e *Editor) InsertChar(c rune) {
	e.checkpoint(opInsert)
	e.buf.InsertChar(c)
}

// InsertStr inserts s at the insertion point as its own undo unit.
func (e *Editor) InsertStr(s string) {
	if s == "" {
		return
	}
	e.checkpoint(opOther)
	e.buf.InsertStr(s)
}

// InsertNewline inserts a line break as its own undo unit.
func (e *Editor) InsertNewline() {
	e.checkpoint(opOther)
	e.buf.InsertNewline()
}

// DeleteLeftGrapheme deletes the grapheme cluster before the insertion point.
// Consecutive deletes undo as one unit.
func (e *Editor) DeleteLeftGrapheme() {
	if e.buf.InsertionPoint() == 0 {
		return
	}
	e.checkpoint(opDelete)
	e.buf.DeleteLeftGrapheme()
}

// DeleteRightGrapheme deletes the grapheme cluster at the insertion point.
func (e *Editor) DeleteRightGrapheme() {
	if e.buf.IsCursorAtEnd() {
		return
	}
	e.checkpoint(opDelete)
	e.buf.DeleteRightGrapheme()
}

// cut removes [start, end) from the buffer and places it on the clipboard.
// The bounds are clamped: the insertion point feeding them is unchecked.
func (e *Editor) cut(start, end int, mode ClipboardMode) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > e.buf.Len() {
		end = e.buf.Len()
	}
	if start >= end {
		return
	}
	e.checkpoint(opOther)
	e.clip.Set(e.buf.Text()[start:end], mode)
	e.buf.ClearRangeSafe(start, end)
}

// CutWordLeft cuts from the start of the word left of the insertion point.
func (e *Editor) CutWordLeft() {
	e.cut(e.buf.WordLeftIndex(), e.buf.InsertionPoint(), ModeCharWise)
}

// CutBigWordLeft cuts from the start of the whitespace-delimited word left of
// the insertion point.
func (e *Editor) CutBigWordLeft() {
	e.cut(e.buf.BigWordLeftIndex(), e.buf.InsertionPoint(), ModeCharWise)
}

// CutWordRight cuts up to the end of the word right of the insertion point.
func (e *Editor) CutWordRight() {
	e.cut(e.buf.InsertionPoint(), e.buf.WordRightIndex(), ModeCharWise)
}

// CutBigWordRight cuts up to the end of the whitespace-delimited word right
// of the insertion point.
func (e *Editor) CutBigWordRight() {
	e.cut(e.buf.InsertionPoint(), e.buf.BigWordRightIndex(), ModeCharWise)
}

// CutFromStart cuts from the beginning of the buffer to the insertion point.
func (e *Editor) CutFromStart() {
	e.cut(0, e.buf.InsertionPoint(), ModeCharWise)
}

// CutToEnd cuts from the insertion point to the end of the buffer.
func (e *Editor) CutToEnd() {
	e.cut(e.buf.InsertionPoint(), e.buf.Len(), ModeCharWise)
}

// CutToLineEnd cuts from the insertion point to the end of the current line,
// leaving the line terminator in place.
func (e *Editor) CutToLineEnd() {
	e.cut(e.buf.InsertionPoint(), e.buf.FindCurrentLineEnd(), ModeCharWise)
}

// CutCurrentLine cuts the whole current line including its terminator. The
// clipboard receives the line content without the terminator, tagged
// line-wise.
func (e *Editor) CutCurrentLine() {
	r := e.buf.CurrentLineRange()
	end := lineTerminatorEnd(e.buf.Text(), r.End)
	if r.Start == end {
		return
	}
	e.checkpoint(opOther)
	e.clip.Set(e.buf.Text()[r.Start:r.End], ModeLineWise)
	e.buf.ClearRangeSafe(r.Start, end)
}

// CopyCurrentWord copies the word under or right of the insertion point
// without mutating the buffer.
func (e *Editor) CopyCurrentWord() {
	r, ok := e.buf.CurrentWordRange()
	if !ok {
		return
	}
	e.clip.Set(e.buf.Text()[r.Start:r.End], ModeCharWise)
}

// CopyCurrentLine copies the current line content, tagged line-wise, without
// mutating the buffer.
func (e *Editor) CopyCurrentLine() {
	r := e.buf.CurrentLineRange()
	e.clip.Set(e.buf.Text()[r.Start:r.End], ModeLineWise)
}

// CutLeftUntilChar cuts leftward from the insertion point to the previous
// occurrence of c. The occurrence itself is cut only when inclusive is true.
// No occurrence leaves the buffer unchanged.
func (e *Editor) CutLeftUntilChar(c rune, inclusive bool) {
	idx, ok := e.buf.FindCharLeft(c)
	if !ok {
		return
	}
	start := idx
	if !inclusive {
		start = textseg.NextGraphemeBoundary(e.buf.Text(), idx)
	}
	e.cut(start, e.buf.InsertionPoint(), ModeCharWise)
}

// CutRightUntilChar cuts rightward from the insertion point to the next
// occurrence of c. The occurrence itself is cut only when inclusive is true.
// No occurrence leaves the buffer unchanged.
func (e *Editor) CutRightUntilChar(c rune, inclusive bool) {
	idx, ok := e.buf.FindCharRight(c)
	if !ok {
		return
	}
	end := idx
	if inclusive {
		end = textseg.NextGraphemeBoundary(e.buf.Text(), idx)
	}
	e.cut(e.buf.InsertionPoint(), end, ModeCharWise)
}

// PasteBefore inserts the clipboard payload before the insertion point.
// Char-wise content is inserted inline with the insertion point left at the
// start of the pasted text; line-wise content becomes a new line above the
// current one with the insertion point at its start.
func (e *Editor) PasteBefore() {
	content, mode := e.clip.Get()
	if content == "" {
		return
	}
	e.checkpoint(opOther)
	switch mode {
	case ModeLineWise:
		if e.buf.IsEmpty() {
			e.buf.ReplaceRange(0, 0, content)
			e.buf.SetInsertionPoint(0)
			return
		}
		at := e.buf.FindCurrentLineStart()
		e.buf.ReplaceRange(at, at, content+"\n")
		e.buf.SetInsertionPoint(at)
	default:
		at := e.buf.InsertionPoint()
		e.buf.InsertStr(content)
		e.buf.SetInsertionPoint(at)
	}
}

// PasteAfter inserts the clipboard payload after the insertion point.
// Char-wise content is inserted inline with the insertion point left after
// the pasted text; line-wise content becomes a new line below the current one
// with the insertion point at its start.
func (e *Editor) PasteAfter() {
	content, mode := e.clip.Get()
	if content == "" {
		return
	}
	e.checkpoint(opOther)
	switch mode {
	case ModeLineWise:
		text := e.buf.Text()
		at := lineTerminatorEnd(text, e.buf.FindCurrentLineEnd())
		switch {
		case len(text) == 0:
			e.buf.ReplaceRange(0, 0, content)
			e.buf.SetInsertionPoint(0)
		case at == len(text) && !e.buf.EndsWith('\n'):
			// Unterminated last line: lead with the newline so the buffer
			// does not gain a trailing blank line.
			e.buf.ReplaceRange(at, at, "\n"+content)
			e.buf.SetInsertionPoint(at + 1)
		default:
			e.buf.ReplaceRange(at, at, content+"\n")
			e.buf.SetInsertionPoint(at)
		}
	default:
		e.buf.InsertStr(content)
	}
}

// Movement forwarding closes the current undo group so that typing on either
// side of a move undoes separately.

// MoveLeft moves the insertion point one grapheme cluster left.
func (e *Editor) MoveLeft() { e.breakGroup(); e.buf.MoveLeft() }

// MoveRight moves the insertion point one grapheme cluster right.
func (e *Editor) MoveRight() { e.breakGroup(); e.buf.MoveRight() }

// MoveWordLeft moves the insertion point to the start of the previous word.
func (e *Editor) MoveWordLeft() { e.breakGroup(); e.buf.MoveWordLeft() }

// MoveWordRight moves the insertion point past the end of the current word.
func (e *Editor) MoveWordRight() { e.breakGroup(); e.buf.MoveWordRight() }

// MoveToLineStart moves the insertion point to the start of the current line.
func (e *Editor) MoveToLineStart() { e.breakGroup(); e.buf.MoveToLineStart() }

// MoveToLineEnd moves the insertion point to the end of the current line.
func (e *Editor) MoveToLineEnd() { e.breakGroup(); e.buf.MoveToLineEnd() }

// MoveToStart moves the insertion point to the start of the buffer.
func (e *Editor) MoveToStart() { e.breakGroup(); e.buf.MoveToStart() }

// MoveToEnd moves the insertion point to the end of the buffer.
func (e *Editor) MoveToEnd() { e.breakGroup(); e.buf.MoveToEnd() }

// MoveLineUp moves the insertion point to the previous line.
func (e *Editor) MoveLineUp() { e.breakGroup(); e.buf.MoveLineUp() }

// MoveLineDown moves the insertion point to the next line.
func (e *Editor) MoveLineDown() { e.breakGroup(); e.buf.MoveLineDown() }

// lineTerminatorEnd returns the offset just past the line terminator that
// starts at contentEnd, or contentEnd when the line is unterminated.
func lineTerminatorEnd(text string, contentEnd int) int {
	if contentEnd < len(text) && text[contentEnd] == '\r' {
		contentEnd++
	}
	if contentEnd < len(text) && text[contentEnd] == '\n' {
		contentEnd++
	}
	return contentEnd
}
