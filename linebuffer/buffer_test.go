package linebuffer

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.InsertionPoint() != 0 {
		t.Errorf("expected insertion point 0, got %d", b.InsertionPoint())
	}
	if b.NumLines() != 1 {
		t.Errorf("expected 1 line, got %d", b.NumLines())
	}
}

func TestNewFromString(t *testing.T) {
	b := NewFromString("hello")

	if b.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.Text())
	}
	if b.InsertionPoint() != 5 {
		t.Errorf("expected insertion point at end, got %d", b.InsertionPoint())
	}
	if !b.IsCursorAtEnd() {
		t.Error("cursor should be at end")
	}
}

func TestSetText(t *testing.T) {
	b := NewFromString("old text")
	b.SetInsertionPoint(2)

	b.SetText("new")

	if b.Text() != "new" {
		t.Errorf("expected %q, got %q", "new", b.Text())
	}
	if b.InsertionPoint() != 3 {
		t.Errorf("expected cursor at new end, got %d", b.InsertionPoint())
	}
}

func TestEndsWith(t *testing.T) {
	if !NewFromString("ab\n").EndsWith('\n') {
		t.Error("expected EndsWith newline")
	}
	if NewFromString("ab").EndsWith('\n') {
		t.Error("did not expect EndsWith newline")
	}
	if New().EndsWith('x') {
		t.Error("empty buffer ends with nothing")
	}
}

func TestLineAccessors(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")

	if b.NumLines() != 3 {
		t.Errorf("expected 3 lines, got %d", b.NumLines())
	}

	b.SetInsertionPoint(0)
	if b.Line() != 0 {
		t.Errorf("expected line 0, got %d", b.Line())
	}
	if !b.IsCursorAtFirstLine() {
		t.Error("expected cursor on first line")
	}
	if b.IsCursorAtLastLine() {
		t.Error("did not expect cursor on last line")
	}

	b.SetInsertionPoint(5)
	if b.Line() != 1 {
		t.Errorf("expected line 1, got %d", b.Line())
	}

	b.MoveToEnd()
	if !b.IsCursorAtLastLine() {
		t.Error("expected cursor on last line")
	}
}

func TestValidate(t *testing.T) {
	b := NewFromString("héllo")

	if err := b.Validate(); err != nil {
		t.Errorf("fresh buffer should be valid: %v", err)
	}

	b.SetInsertionPoint(99)
	if !errors.Is(b.Validate(), ErrInsertionPointOutOfRange) {
		t.Errorf("expected out of range error, got %v", b.Validate())
	}
	if b.IsValid() {
		t.Error("expected invalid buffer")
	}

	b.SetInsertionPoint(-1)
	if !errors.Is(b.Validate(), ErrInsertionPointOutOfRange) {
		t.Errorf("expected out of range error, got %v", b.Validate())
	}

	// Byte 2 splits the two-byte é.
	b.SetInsertionPoint(2)
	if !errors.Is(b.Validate(), ErrInsertionPointOffBoundary) {
		t.Errorf("expected off boundary error, got %v", b.Validate())
	}
}

func TestValidateCombiningMark(t *testing.T) {
	b := NewFromString("éx")

	// Byte 1 is between the base letter and its combining mark: a rune
	// boundary but not a grapheme boundary.
	b.SetInsertionPoint(1)
	if !errors.Is(b.Validate(), ErrInsertionPointOffBoundary) {
		t.Errorf("expected off boundary error, got %v", b.Validate())
	}

	b.SetInsertionPoint(3)
	if err := b.Validate(); err != nil {
		t.Errorf("cluster end should be valid: %v", err)
	}
}

// Every state reached through the mutating API keeps the insertion point on a
// grapheme boundary inside the buffer.
func TestMutatorsPreserveValidity(t *testing.T) {
	b := NewFromString("héllo 👨‍👩‍👧‍👦 wörld\nsecond line")

	steps := []struct {
		name string
		op   func()
	}{
		{"MoveToStart", b.MoveToStart},
		{"MoveWordRight", b.MoveWordRight},
		{"InsertStr", func() { b.InsertStr("é") }},
		{"MoveRight", b.MoveRight},
		{"DeleteLeftGrapheme", b.DeleteLeftGrapheme},
		{"MoveWordRightEnd", b.MoveWordRightEnd},
		{"SwapGraphemes", b.SwapGraphemes},
		{"UppercaseWord", b.UppercaseWord},
		{"MoveLineDown", b.MoveLineDown},
		{"ClearToLineEnd", b.ClearToLineEnd},
		{"MoveBigWordLeft", b.MoveBigWordLeft},
		{"DeleteWordRight", b.DeleteWordRight},
		{"SwapWords", b.SwapWords},
		{"MoveLineUp", b.MoveLineUp},
		{"SwitchcaseChar", b.SwitchcaseChar},
		{"ClearToEnd", b.ClearToEnd},
		{"Clear", b.Clear},
	}

	for _, s := range steps {
		s.op()
		if err := b.Validate(); err != nil {
			t.Fatalf("after %s: buffer %q cursor %d: %v", s.name, b.Text(), b.InsertionPoint(), err)
		}
	}
}
