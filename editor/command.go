package editor

// CommandKind identifies an editing command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota

	// Movement.
	CmdMoveLeft
	CmdMoveRight
	CmdMoveWordLeft
	CmdMoveWordRight
	CmdMoveWordRightStart
	CmdMoveWordRightEnd
	CmdMoveBigWordLeft
	CmdMoveBigWordRightStart
	CmdMoveBigWordRightEnd
	CmdMoveToLineStart
	CmdMoveToLineEnd
	CmdMoveLineUp
	CmdMoveLineDown
	CmdMoveToStart
	CmdMoveToEnd

	// Insertion and deletion.
	CmdInsertChar
	CmdInsertNewline
	CmdDeleteLeftGrapheme
	CmdDeleteRightGrapheme
	CmdDeleteWordLeft
	CmdDeleteWordRight

	// Kill ring.
	CmdCutWordLeft
	CmdCutWordRight
	CmdCutBigWordLeft
	CmdCutBigWordRight
	CmdCutFromStart
	CmdCutToEnd
	CmdCutToLineEnd
	CmdCutCurrentLine
	CmdCopyCurrentWord
	CmdCopyCurrentLine
	CmdCutLeftUntilChar
	CmdCutLeftBeforeChar
	CmdCutRightUntilChar
	CmdCutRightBeforeChar
	CmdPasteBefore
	CmdPasteAfter

	// Transforms.
	CmdCapitalizeChar
	CmdUppercaseWord
	CmdLowercaseWord
	CmdSwitchcaseChar
	CmdSwapGraphemes
	CmdSwapWords

	// History.
	CmdUndo
	CmdRedo
)

// Command is one editing command. Ch carries the argument for the insert and
// until-char kinds and is ignored otherwise.
type Command struct {
	Kind CommandKind
	Ch   rune
}

// Apply executes cmd against the editor. Unknown kinds are ignored. The only
// errors are ErrNothingToUndo and ErrNothingToRedo from the history kinds.
func (e *Editor) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdMoveLeft:
		e.MoveLeft()
	case CmdMoveRight:
		e.MoveRight()
	case CmdMoveWordLeft:
		e.MoveWordLeft()
	case CmdMoveWordRight:
		e.MoveWordRight()
	case CmdMoveWordRightStart:
		e.breakGroup()
		e.buf.MoveWordRightStart()
	case CmdMoveWordRightEnd:
		e.breakGroup()
		e.buf.MoveWordRightEnd()
	case CmdMoveBigWordLeft:
		e.breakGroup()
		e.buf.MoveBigWordLeft()
	case CmdMoveBigWordRightStart:
		e.breakGroup()
		e.buf.MoveBigWordRightStart()
	case CmdMoveBigWordRightEnd:
		e.breakGroup()
		e.buf.MoveBigWordRightEnd()
	case CmdMoveToLineStart:
		e.MoveToLineStart()
	case CmdMoveToLineEnd:
		e.MoveToLineEnd()
	case CmdMoveLineUp:
		e.MoveLineUp()
	case CmdMoveLineDown:
		e.MoveLineDown()
	case CmdMoveToStart:
		e.MoveToStart()
	case CmdMoveToEnd:
		e.MoveToEnd()
	case CmdInsertChar:
		e.InsertChar(cmd.Ch)
	case CmdInsertNewline:
		e.InsertNewline()
	case CmdDeleteLeftGrapheme:
		e.DeleteLeftGrapheme()
	case CmdDeleteRightGrapheme:
		e.DeleteRightGrapheme()
	case CmdDeleteWordLeft:
		e.checkpoint(opOther)
		e.buf.DeleteWordLeft()
	case CmdDeleteWordRight:
		e.checkpoint(opOther)
		e.buf.DeleteWordRight()
	case CmdCutWordLeft:
		e.CutWordLeft()
	case CmdCutWordRight:
		e.CutWordRight()
	case CmdCutBigWordLeft:
		e.CutBigWordLeft()
	case CmdCutBigWordRight:
		e.CutBigWordRight()
	case CmdCutFromStart:
		e.CutFromStart()
	case CmdCutToEnd:
		e.CutToEnd()
	case CmdCutToLineEnd:
		e.CutToLineEnd()
	case CmdCutCurrentLine:
		e.CutCurrentLine()
	case CmdCopyCurrentWord:
		e.CopyCurrentWord()
	case CmdCopyCurrentLine:
		e.CopyCurrentLine()
	case CmdCutLeftUntilChar:
		e.CutLeftUntilChar(cmd.Ch, true)
	case CmdCutLeftBeforeChar:
		e.CutLeftUntilChar(cmd.Ch, false)
	case CmdCutRightUntilChar:
		e.CutRightUntilChar(cmd.Ch, true)
	case CmdCutRightBeforeChar:
		e.CutRightUntilChar(cmd.Ch, false)
	case CmdPasteBefore:
		e.PasteBefore()
	case CmdPasteAfter:
		e.PasteAfter()
	case CmdCapitalizeChar:
		e.checkpoint(opOther)
		e.buf.CapitalizeChar()
	case CmdUppercaseWord:
		e.checkpoint(opOther)
		e.buf.UppercaseWord()
	case CmdLowercaseWord:
		e.checkpoint(opOther)
		e.buf.LowercaseWord()
	case CmdSwitchcaseChar:
		e.checkpoint(opOther)
		e.buf.SwitchcaseChar()
	case CmdSwapGraphemes:
		e.checkpoint(opOther)
		e.buf.SwapGraphemes()
	case CmdSwapWords:
		e.checkpoint(opOther)
		e.buf.SwapWords()
	case CmdUndo:
		return e.Undo()
	case CmdRedo:
		return e.Redo()
	}
	return nil
}
