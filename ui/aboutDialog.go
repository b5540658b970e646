package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/carotkut94/SlideColorPicker/config"
)

func ShowAboutDialog(pickerApp fyne.App) {
	title := widget.NewLabel("SlideColorPicker")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"A gesture-driven color picker: hold to expand the gradient, slide to choose, release to commit.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Continuous two-color gradient selection\n" +
			"• Smooth grow/shrink press animation\n" +
			"• Hex readout with clipboard copy\n" +
			"• Gradient swatch PNG export\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	centeredTitle := container.NewCenter(title)
	centeredVersion := container.NewCenter(version)

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		centeredTitle,
		centeredVersion,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	aboutWin = pickerApp.NewWindow("About")
	aboutWin.SetContent(container.NewBorder(
		nil,
		container.NewCenter(closeBtn),
		nil,
		nil,
		container.NewScroll(mainContent),
	))
	aboutWin.Resize(fyne.NewSize(380, 320))
	aboutWin.Show()
}
