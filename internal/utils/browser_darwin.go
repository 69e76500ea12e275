//go:build darwin

package utils

import (
	"fmt"
	"os/exec"
)

// OpenBrowser opens url with the desktop's default handler
func OpenBrowser(url string) error {
	if err := exec.Command("open", url).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
