package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container with a white background.
// Cards give sections visual separation against the gradient background.
//
// The card uses a stacked layout: a white rectangle forms the background
// and the content sits on top with uniform padding.
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)

	// Minimal footprint so the card stays visible even with tiny content
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a bold title and separator above
// the content. Convenience for the common titled-card pattern.
func NewCardWithHeader(title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	cardContent := container.NewBorder(
		header, // Top
		nil,    // Bottom
		nil,    // Left
		nil,    // Right
		content,
	)

	return NewCard(cardContent)
}
