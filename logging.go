package main

import (
	"io"
	"log/slog"
	"os"
)

var persistentLogFile *os.File

// setupLogger initializes the structured logger, mirroring to a file when
// OSINTBOT_LOG_FILE is set.
func setupLogger() {
	var out io.Writer = os.Stdout

	if logPath := os.Getenv("OSINTBOT_LOG_FILE"); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			persistentLogFile = f
			out = io.MultiWriter(os.Stdout, f)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler).With("app", "osintbot"))

	if persistentLogFile != nil {
		slog.Info("Persistent logging enabled", "file", persistentLogFile.Name())
	}
}

func closeLogger() {
	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
