// Package config loads editor settings from a TOML file, applies environment
// overrides, and supports live reload through a file watcher.
package config
