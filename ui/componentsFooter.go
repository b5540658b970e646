package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// NewFooter creates the application footer with attribution text.
func NewFooter() fyne.CanvasObject {
	footerText := canvas.NewText("Built with Go and fyne", TextColorLight)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	return footerText
}
