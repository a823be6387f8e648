package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linestorm.toml")
	writeFile(t, path, `
[editor]
max_undo_entries = 50

[clipboard]
use_system = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Editor.MaxUndoEntries != 50 {
		t.Errorf("MaxUndoEntries = %d, want 50", cfg.Editor.MaxUndoEntries)
	}
	if !cfg.Clipboard.UseSystem {
		t.Error("UseSystem = false, want true")
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linestorm.toml")
	writeFile(t, path, "[clipboard]\nuse_system = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Editor.MaxUndoEntries != Default().Editor.MaxUndoEntries {
		t.Errorf("MaxUndoEntries = %d, want default %d", cfg.Editor.MaxUndoEntries, Default().Editor.MaxUndoEntries)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linestorm.toml")
	writeFile(t, path, "[editor\nmax_undo")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadRejectsNegativeUndoEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linestorm.toml")
	writeFile(t, path, "[editor]\nmax_undo_entries = -1\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() = nil, want validation error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"MAX_UNDO_ENTRIES", "25")
	t.Setenv(EnvPrefix+"SYSTEM_CLIPBOARD", "true")

	cfg := ApplyEnv(Default())
	if cfg.Editor.MaxUndoEntries != 25 {
		t.Errorf("MaxUndoEntries = %d, want 25", cfg.Editor.MaxUndoEntries)
	}
	if !cfg.Clipboard.UseSystem {
		t.Error("UseSystem = false, want true")
	}
}

func TestApplyEnvIgnoresBadValues(t *testing.T) {
	t.Setenv(EnvPrefix+"MAX_UNDO_ENTRIES", "banana")

	cfg := ApplyEnv(Default())
	if cfg.Editor.MaxUndoEntries != Default().Editor.MaxUndoEntries {
		t.Errorf("MaxUndoEntries = %d, want default", cfg.Editor.MaxUndoEntries)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linestorm.toml")
	writeFile(t, path, "[editor]\nmax_undo_entries = 10\n")

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[editor]\nmax_undo_entries = 20\n")

	select {
	case cfg := <-reloaded:
		if cfg.Editor.MaxUndoEntries != 20 {
			t.Errorf("MaxUndoEntries = %d, want 20", cfg.Editor.MaxUndoEntries)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linestorm.toml")
	writeFile(t, path, "")

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() = %v", err)
	}
}
