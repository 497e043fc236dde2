// Package util holds the process-wide logger and small debug helpers.
package util

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

var level = new(slog.LevelVar)

// Logger is the process-wide logger. It writes to stderr until InitLogger
// adds a per-run log file.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

// SetVerbose lowers the log level to debug.
func SetVerbose() {
	level.Set(slog.LevelDebug)
}

// InitLogger fans logs out to stderr and to mllab_<tag>.log.
func InitLogger(tag string) error {
	fname := fmt.Sprintf("mllab_%s.log", tag)
	file, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("create %s: %w", fname, err)
	}
	Logger = slog.New(slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
	slog.SetDefault(Logger)
	return nil
}
