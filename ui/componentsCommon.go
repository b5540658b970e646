package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling.
// This is a convenience function to avoid repeating the style configuration.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading, // Left-aligned text
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
// Thin wrapper around widget.NewSeparator for consistency.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}
