package editor

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard bridges cut and copy payloads to the OS clipboard. The mode
// of the last payload written by this process is tracked locally; content that
// arrives from outside the process is treated as char-wise. When the OS
// clipboard is unavailable it degrades to purely local storage.
type SystemClipboard struct {
	local LocalClipboard
}

// NewSystemClipboard creates a clipboard backed by the OS clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Set stores content on the OS clipboard and remembers its mode.
func (c *SystemClipboard) Set(content string, mode ClipboardMode) {
	c.local.Set(content, mode)
	// Best effort; the local copy remains authoritative on failure.
	_ = clipboard.WriteAll(content)
}

// Get returns the OS clipboard content. The tracked mode applies only when
// the content still matches what this process last wrote.
func (c *SystemClipboard) Get() (string, ClipboardMode) {
	external, err := clipboard.ReadAll()
	if err != nil {
		return c.local.Get()
	}
	if content, mode := c.local.Get(); external == content {
		return content, mode
	}
	return external, ModeCharWise
}
