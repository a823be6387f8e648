package textseg

import "testing"

func TestLineStart(t *testing.T) {
	tests := []struct {
		name string
		s    string
		pos  int
		want int
	}{
		{"first line", "abc\ndef", 2, 0},
		{"start of second line", "abc\ndef", 4, 4},
		{"middle of second line", "abc\ndef", 6, 4},
		{"on the newline", "abc\ndef", 3, 0},
		{"empty", "", 0, 0},
		{"past end clamps", "abc\ndef", 99, 4},
		{"negative", "abc", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineStart(tt.s, tt.pos); got != tt.want {
				t.Errorf("LineStart(%q, %d) = %d, want %d", tt.s, tt.pos, got, tt.want)
			}
		})
	}
}

func TestLineContentEnd(t *testing.T) {
	tests := []struct {
		name string
		s    string
		pos  int
		want int
	}{
		{"first line", "abc\ndef", 1, 3},
		{"last line no newline", "abc\ndef", 5, 7},
		{"crlf excludes cr", "abc\r\ndef", 1, 3},
		{"empty line", "a\n\nb", 2, 2},
		{"empty", "", 0, 0},
		{"lone cr kept", "a\rb", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineContentEnd(tt.s, tt.pos); got != tt.want {
				t.Errorf("LineContentEnd(%q, %d) = %d, want %d", tt.s, tt.pos, got, tt.want)
			}
		})
	}
}

func TestLineCountAndIndex(t *testing.T) {
	if got := LineCount(""); got != 1 {
		t.Errorf("LineCount(empty) = %d, want 1", got)
	}
	if got := LineCount("a\nb\nc"); got != 3 {
		t.Errorf("LineCount = %d, want 3", got)
	}
	if got := LineIndex("a\nb\nc", 0); got != 0 {
		t.Errorf("LineIndex at 0 = %d, want 0", got)
	}
	if got := LineIndex("a\nb\nc", 2); got != 1 {
		t.Errorf("LineIndex at 2 = %d, want 1", got)
	}
	if got := LineIndex("a\nb\nc", 5); got != 2 {
		t.Errorf("LineIndex at end = %d, want 2", got)
	}
}
