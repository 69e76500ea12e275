package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotation bounds the size and lifetime of the log file
type LogRotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultLogRotation keeps 1MB per file and two backups for 30 days
var DefaultLogRotation = LogRotation{MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 30}

// RotationFromEnv overrides DefaultLogRotation with the GITDASH_LOG_MAX_*
// variables. Values that are not integers or are out of range are ignored.
func RotationFromEnv() LogRotation {
	r := DefaultLogRotation
	r.MaxSizeMB = envInt("GITDASH_LOG_MAX_SIZE", r.MaxSizeMB, 1)
	r.MaxBackups = envInt("GITDASH_LOG_MAX_BACKUPS", r.MaxBackups, 0)
	r.MaxAgeDays = envInt("GITDASH_LOG_MAX_AGE", r.MaxAgeDays, 1)
	return r
}

func envInt(key string, fallback, minimum int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minimum {
		return fallback
	}
	return n
}

// GetLogFilePath returns GITDASH_LOG_FILE when set, otherwise
// ~/.gitdash/logs/gitdash.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITDASH_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitdash.log"
	}
	return filepath.Join(homeDir, ".gitdash", "logs", "gitdash.log")
}

// openLogFile creates the log directory and returns a rotating writer for
// path. The file itself is opened on first write.
func openLogFile(path string, rotation LogRotation) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
	}, nil
}
