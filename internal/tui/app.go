package tui

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/linestorm/editor"
	"github.com/dshills/linestorm/internal/config"
)

// Options configures an App.
type Options struct {
	// Config holds the initial settings.
	Config config.Config

	// FilePath is an optional file whose contents seed the buffer and which
	// Ctrl+S writes back to.
	FilePath string
}

// App drives an editor session in a terminal.
type App struct {
	mu sync.Mutex

	screen   tcell.Screen
	ed       *editor.Editor
	filePath string
	status   string
	quit     bool
}

// New creates an App from opts. When opts.FilePath names an existing file its
// contents become the initial buffer text.
func New(opts Options) (*App, error) {
	var text string
	if opts.FilePath != "" {
		data, err := os.ReadFile(opts.FilePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", opts.FilePath, err)
		}
		text = string(data)
	}

	var clip editor.Clipboard
	if opts.Config.Clipboard.UseSystem {
		clip = editor.NewSystemClipboard()
	}

	ed := editor.New(editor.Options{
		Clipboard:      clip,
		MaxUndoEntries: opts.Config.Editor.MaxUndoEntries,
		Text:           text,
	})
	ed.MoveToStart()

	return &App{
		ed:       ed,
		filePath: opts.FilePath,
	}, nil
}

// ApplyConfig applies newly loaded settings to the running session. Safe to
// call from a watcher goroutine.
func (a *App) ApplyConfig(cfg config.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ed.SetMaxUndoEntries(cfg.Editor.MaxUndoEntries)
	a.status = "config reloaded"
}

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	a.screen = screen

	for !a.quit {
		a.render()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
	return nil
}

// handleKey maps a key event to an editing command.
func (a *App) handleKey(ev *tcell.EventKey) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = ""

	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		a.quit = true
		return
	case tcell.KeyCtrlS:
		a.save()
		return
	case tcell.KeyLeft:
		if ctrl {
			a.apply(editor.CmdMoveWordLeft)
		} else {
			a.apply(editor.CmdMoveLeft)
		}
		return
	case tcell.KeyRight:
		if ctrl {
			a.apply(editor.CmdMoveWordRight)
		} else {
			a.apply(editor.CmdMoveRight)
		}
		return
	case tcell.KeyUp:
		a.apply(editor.CmdMoveLineUp)
		return
	case tcell.KeyDown:
		a.apply(editor.CmdMoveLineDown)
		return
	case tcell.KeyHome, tcell.KeyCtrlA:
		a.apply(editor.CmdMoveToLineStart)
		return
	case tcell.KeyEnd, tcell.KeyCtrlE:
		a.apply(editor.CmdMoveToLineEnd)
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.apply(editor.CmdDeleteLeftGrapheme)
		return
	case tcell.KeyDelete:
		a.apply(editor.CmdDeleteRightGrapheme)
		return
	case tcell.KeyEnter:
		a.apply(editor.CmdInsertNewline)
		return
	case tcell.KeyCtrlW:
		a.apply(editor.CmdCutWordLeft)
		return
	case tcell.KeyCtrlK:
		a.apply(editor.CmdCutToLineEnd)
		return
	case tcell.KeyCtrlU:
		a.apply(editor.CmdCutFromStart)
		return
	case tcell.KeyCtrlY:
		a.apply(editor.CmdPasteAfter)
		return
	case tcell.KeyCtrlT:
		a.apply(editor.CmdSwapGraphemes)
		return
	case tcell.KeyCtrlZ:
		a.applyHistory(editor.CmdUndo)
		return
	case tcell.KeyCtrlR:
		a.applyHistory(editor.CmdRedo)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	if ev.Modifiers()&tcell.ModAlt != 0 {
		switch ev.Rune() {
		case 'u':
			a.apply(editor.CmdUppercaseWord)
		case 'l':
			a.apply(editor.CmdLowercaseWord)
		case 'c':
			a.apply(editor.CmdCapitalizeChar)
		case 't':
			a.apply(editor.CmdSwapWords)
		case 'd':
			a.apply(editor.CmdCutWordRight)
		case 'b':
			a.apply(editor.CmdMoveBigWordLeft)
		case 'f':
			a.apply(editor.CmdMoveBigWordRightStart)
		}
		return
	}

	_ = a.ed.Apply(editor.Command{Kind: editor.CmdInsertChar, Ch: ev.Rune()})
}

func (a *App) apply(kind editor.CommandKind) {
	_ = a.ed.Apply(editor.Command{Kind: kind})
}

// applyHistory surfaces empty-history errors in the status line instead of
// dropping them.
func (a *App) applyHistory(kind editor.CommandKind) {
	if err := a.ed.Apply(editor.Command{Kind: kind}); err != nil {
		a.status = err.Error()
	}
}

func (a *App) save() {
	if a.filePath == "" {
		a.status = "no file to save to"
		return
	}
	if err := os.WriteFile(a.filePath, []byte(a.ed.Buffer().Text()), 0o644); err != nil {
		a.status = err.Error()
		return
	}
	a.status = "saved " + a.filePath
}

// render draws the buffer and status line and positions the cursor.
func (a *App) render() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.screen.Clear()
	width, height := a.screen.Size()
	style := tcell.StyleDefault

	buf := a.ed.Buffer()
	text := buf.Text()
	ip := buf.InsertionPoint()

	x, y := 0, 0
	curX, curY := 0, 0
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if offset == ip {
			curX, curY = x, y
		}
		offset += len(cluster)

		if cluster == "\n" || cluster == "\r\n" {
			x = 0
			y++
			continue
		}

		w := runewidth.StringWidth(cluster)
		if y < height-1 && x < width {
			runes := []rune(cluster)
			a.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	if ip == len(text) {
		curX, curY = x, y
	}

	a.renderStatus(width, height)

	if curY < height-1 && curX < width {
		a.screen.ShowCursor(curX, curY)
	} else {
		a.screen.HideCursor()
	}
	a.screen.Show()
}

func (a *App) renderStatus(width, height int) {
	buf := a.ed.Buffer()
	line := buf.Line() + 1
	msg := fmt.Sprintf(" %d/%d  byte %d/%d  ^S save  ^Z undo  ^Q quit", line, buf.NumLines(), buf.InsertionPoint(), buf.Len())
	if a.status != "" {
		msg += "  [" + a.status + "]"
	}

	style := tcell.StyleDefault.Reverse(true)
	y := height - 1
	x := 0
	for _, r := range msg {
		if x >= width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}
