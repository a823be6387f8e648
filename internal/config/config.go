package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "LINESTORM_"

// Config holds all editor settings.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// EditorConfig holds buffer and history settings.
type EditorConfig struct {
	// MaxUndoEntries bounds the undo stack.
	MaxUndoEntries int `toml:"max_undo_entries"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// UseSystem routes cut and copy payloads through the OS clipboard.
	UseSystem bool `toml:"use_system"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			MaxUndoEntries: 1000,
		},
		Clipboard: ClipboardConfig{
			UseSystem: false,
		},
	}
}

// Load reads settings from a TOML file at path, layered over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ApplyEnv overlays LINESTORM_ environment variables onto cfg. Unparseable
// values are ignored.
func ApplyEnv(cfg Config) Config {
	if val, ok := os.LookupEnv(EnvPrefix + "MAX_UNDO_ENTRIES"); ok {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Editor.MaxUndoEntries = n
		}
	}
	if val, ok := os.LookupEnv(EnvPrefix + "SYSTEM_CLIPBOARD"); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Clipboard.UseSystem = b
		}
	}
	return cfg
}

// Validate checks cfg for out-of-range values.
func (c Config) Validate() error {
	if c.Editor.MaxUndoEntries < 0 {
		return fmt.Errorf("editor.max_undo_entries must not be negative, got %d", c.Editor.MaxUndoEntries)
	}
	return nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
