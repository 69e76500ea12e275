//go:build linux

package utils

import (
	"fmt"
	"os/exec"
)

// OpenBrowser opens url with the desktop's default handler
func OpenBrowser(url string) error {
	if err := exec.Command("xdg-open", url).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
