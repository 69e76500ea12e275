package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// maxStdinBytes bounds what ReadFromStdin accepts
const maxStdinBytes = 1 << 20

// ReadFromStdin reads piped standard input. It returns an empty string
// without blocking when stdin is a terminal or an empty file.
func ReadFromStdin() (string, error) {
	return readPiped(os.Stdin)
}

func readPiped(f *os.File) (string, error) {
	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	// If it's a terminal, we don't want to block waiting for input
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	data, err := io.ReadAll(io.LimitReader(f, maxStdinBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxStdinBytes {
		return "", fmt.Errorf("input exceeds %d bytes", maxStdinBytes)
	}
	return strings.TrimSpace(string(data)), nil
}
