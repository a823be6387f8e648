// Package main is the entry point for the linestorm demo editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/linestorm/internal/config"
	"github.com/dshills/linestorm/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linestorm - grapheme-aware line editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linestorm [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("linestorm %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	cfg = config.ApplyEnv(cfg)

	var filePath string
	if args := flag.Args(); len(args) > 0 {
		filePath = args[0]
	}

	app, err := tui.New(tui.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, func(cfg config.Config) {
			app.ApplyConfig(config.ApplyEnv(cfg))
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
