// Package logger builds the application's slog logger from an optional
// YAML settings file.
//
// The settings file (config.yaml by default) may contain:
//
//	level: info      # debug, info, warn, error
//	console: true    # log to stderr
//	file: logs/showcase.log
//	max_size_mb: 1   # rotate the file past this size
//	max_backups: 3   # rotated files to keep
//	format: auto     # text, json or auto (json when stderr is not a terminal)
//
// A missing or unreadable file, or unknown values, fall back to defaults.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/showcase/internal/encoding"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is the settings file looked up in the working directory.
const DefaultSettingsPath = "config.yaml"

// Log file rotation defaults.
const (
	DefaultMaxSizeMB  = 1
	DefaultMaxBackups = 3
)

// Settings configures the logger.
type Settings struct {
	Level      string `yaml:"level"`
	Console    *bool  `yaml:"console"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Format     string `yaml:"format"`
}

// DefaultSettings returns info-level console logging in auto format.
func DefaultSettings() Settings {
	console := true
	return Settings{
		Level:      "info",
		Console:    &console,
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		Format:     "auto",
	}
}

// LoadSettings reads settings from path, filling unset values with defaults.
func LoadSettings(path string) Settings {
	cfg := DefaultSettings()
	if path == "" {
		return cfg
	}

	data, err := encoding.ReadFile(path)
	if err != nil || data == nil {
		return cfg
	}

	var file Settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg
	}

	if file.Level != "" {
		cfg.Level = file.Level
	}

	if file.Console != nil {
		cfg.Console = file.Console
	}

	if file.File != "" {
		cfg.File = file.File
	}

	if file.MaxSizeMB > 0 {
		cfg.MaxSizeMB = file.MaxSizeMB
	}

	if file.MaxBackups > 0 {
		cfg.MaxBackups = file.MaxBackups
	}

	if file.Format != "" {
		cfg.Format = file.Format
	}

	return cfg
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to stderr and/or the settings file. The file
// is rotated once it exceeds MaxSizeMB, keeping MaxBackups old files. The
// returned close function releases the log file and is never nil.
func New(cfg Settings, stderr io.Writer) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	var writers []io.Writer
	if cfg.Console == nil || *cfg.Console {
		writers = append(writers, stderr)
	}

	if cfg.File != "" {
		if err := encoding.EnsureParentDir(cfg.File); err != nil {
			return nil, closer, fmt.Errorf("failed to create log directory for %s: %w", cfg.File, err)
		}

		f := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: orDefault(cfg.MaxBackups, DefaultMaxBackups),
		}

		writers = append(writers, f)
		closer = f.Close
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if useJSON(cfg.Format, stderr) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), closer, nil
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}

	return n
}

func useJSON(format string, stderr io.Writer) bool {
	switch strings.ToLower(format) {
	case "json":
		return true
	case "text":
		return false
	}

	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}

	return !term.IsTerminal(int(f.Fd()))
}
