package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// NewHeader creates the application header with title and subtitle.
func NewHeader() fyne.CanvasObject {
	titleText := canvas.NewText("SlideColorPicker", TextColorLight)
	titleText.TextSize = TitleTextSize
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter

	subtitleText := canvas.NewText(
		"Press, slide and release to pick a color",
		TextColorLight,
	)
	subtitleText.TextSize = SubtitleTextSize
	subtitleText.Alignment = fyne.TextAlignCenter

	header := container.NewVBox(
		titleText,
		subtitleText,
		layout.NewSpacer(), // Space below the header to separate it from content
	)

	return header
}
