package editor

// ClipboardMode tags how a clipboard payload was produced and therefore how a
// paste should apply it.
type ClipboardMode uint8

const (
	// ModeCharWise pastes inline at the insertion point.
	ModeCharWise ClipboardMode = iota

	// ModeLineWise pastes as a whole line above or below the current line.
	ModeLineWise
)

// Clipboard stores one cut or copied payload together with its mode.
type Clipboard interface {
	// Set stores content, replacing the previous payload.
	Set(content string, mode ClipboardMode)

	// Get returns the stored payload and its mode.
	Get() (string, ClipboardMode)
}

// LocalClipboard is an in-process Clipboard.
type LocalClipboard struct {
	content string
	mode    ClipboardMode
}

// NewLocalClipboard creates an empty in-process clipboard.
func NewLocalClipboard() *LocalClipboard {
	return &LocalClipboard{}
}

// Set stores content and its mode.
func (c *LocalClipboard) Set(content string, mode ClipboardMode) {
	c.content = content
	c.mode = mode
}

// Get returns the stored content and mode.
func (c *LocalClipboard) Get() (string, ClipboardMode) {
	return c.content, c.mode
}
