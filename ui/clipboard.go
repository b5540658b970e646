package ui

import (
	"fmt"
	"log"

	"golang.design/x/clipboard"
)

// CopyHexToClipboard places a hex color string on the system clipboard.
func CopyHexToClipboard(hex string) error {
	// Initialize clipboard access
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	clipboard.Write(clipboard.FmtText, []byte(hex))
	log.Printf("[UI] copied %s to clipboard", hex)
	return nil
}
