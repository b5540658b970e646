package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/carotkut94/SlideColorPicker/config"
	"github.com/carotkut94/SlideColorPicker/picker"
)

// BuildMainLayout constructs the complete demo UI.
//
// The layout structure is:
// - Background: Purple gradient (45° angle)
// - Header: Application title and subtitle (top)
// - Content Area: Two-column layout
//   - Left Column: the picker itself
//   - Right Column: preview of the committed color with hex readout,
//     copy-to-clipboard and swatch export actions
//
// - Footer: Attribution text (bottom)
func BuildMainLayout(window fyne.Window) fyne.CanvasObject {
	cfg := config.LoadPickerConfig()
	state := NewPickerAppState(window, cfg)

	background := canvas.NewLinearGradient(
		BackgroundStartColor,
		BackgroundEndColor,
		BackgroundGradientAngle,
	)

	header := NewHeader()

	// The picker card. LoadPickerConfig falls back to validated defaults,
	// so construction can only fail on a programming error.
	colorPicker, err := picker.NewFromConfig(cfg)
	if err != nil {
		log.Printf("[UI] cannot build picker from config: %v", err)
		colorPicker, _ = picker.NewFromConfig(config.DefaultPickerConfig())
	}
	colorPicker.OnChanged = state.NotifyColorCommitted
	pickerCard := NewCardWithHeader("Picker", container.NewCenter(colorPicker))

	// The preview card, driven by commit notifications.
	preview := canvas.NewRectangle(state.SelectedColor)
	preview.SetMinSize(fyne.NewSize(96, 96))
	preview.CornerRadius = 8

	hexText := canvas.NewText(picker.FormatHex(state.SelectedColor), color.Black)
	hexText.TextSize = cfg.TextSize
	hexText.TextStyle = fyne.TextStyle{Monospace: true}
	hexText.Alignment = fyne.TextAlignCenter

	state.OnColorCommitted = append(state.OnColorCommitted, func(progress float64, c color.Color) {
		preview.FillColor = c
		preview.Refresh()
		hexText.Text = picker.FormatHex(c)
		hexText.Refresh()
		log.Printf("[UI] color committed: %s (progress %.3f)", hexText.Text, progress)
	})

	copyButton := widget.NewButton("Copy hex", func() {
		if err := CopyHexToClipboard(picker.FormatHex(state.SelectedColor)); err != nil {
			dialog.ShowError(err, state.Window)
		}
	})

	exportButton := widget.NewButton("Export swatch", func() {
		showExportSwatchDialog(state)
	})

	previewCard := NewCardWithHeader("Selection", container.NewVBox(
		container.NewCenter(preview),
		container.NewCenter(hexText),
		NewSeparator(),
		copyButton,
		exportButton,
	))

	contentArea := container.NewGridWithColumns(2,
		container.NewPadded(pickerCard),
		container.NewPadded(previewCard),
	)

	footer := NewFooter()

	mainLayout := container.NewBorder(
		container.NewPadded(header), // Top
		container.NewPadded(footer), // Bottom
		nil,                         // Left
		nil,                         // Right
		contentArea,                 // Center
	)

	// Stack the gradient behind everything else
	return container.NewStack(background, mainLayout)
}

// showExportSwatchDialog asks for a destination and writes the gradient
// swatch PNG there.
func showExportSwatchDialog(state *PickerAppState) {
	start, _ := picker.ParseColor(state.Config.StartColor)
	end, _ := picker.ParseColor(state.Config.EndColor)

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, state.Window)
			return
		}
		if writer == nil {
			return // user cancelled
		}
		defer writer.Close()

		if err := ExportSwatch(writer, start, end, state.SelectedProgress); err != nil {
			dialog.ShowError(err, state.Window)
		}
	}, state.Window)

	fileDialog.SetFileName("swatch.png")
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	fileDialog.Show()
}
