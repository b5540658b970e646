package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/carotkut94/SlideColorPicker/config"
	"github.com/carotkut94/SlideColorPicker/models"
	"github.com/carotkut94/SlideColorPicker/validation"
)

// ShowConfigWindow opens the picker configuration editor. Saved values are
// validated before they hit disk; the running picker keeps its current
// configuration until the application restarts.
func ShowConfigWindow(pickerApp fyne.App) {
	cfg := config.LoadPickerConfig()

	radiusEntry := widget.NewEntry()
	radiusEntry.SetText(strconv.FormatFloat(float64(cfg.Radius), 'f', -1, 32))

	multiplierEntry := widget.NewEntry()
	multiplierEntry.SetText(strconv.FormatFloat(float64(cfg.HeightMultiplier), 'f', -1, 32))

	startColorEntry := widget.NewEntry()
	startColorEntry.SetText(cfg.StartColor)

	endColorEntry := widget.NewEntry()
	endColorEntry.SetText(cfg.EndColor)

	textSizeEntry := widget.NewEntry()
	textSizeEntry.SetText(strconv.FormatFloat(float64(cfg.TextSize), 'f', -1, 32))

	form := widget.NewForm(
		widget.NewFormItem("Knob radius", radiusEntry),
		widget.NewFormItem("Height multiplier", multiplierEntry),
		widget.NewFormItem("Start color", startColorEntry),
		widget.NewFormItem("End color", endColorEntry),
		widget.NewFormItem("Text size", textSizeEntry),
	)

	configWin := pickerApp.NewWindow("Configuration")

	saveBtn := widget.NewButton("Save", func() {
		updated, err := parseConfigForm(
			radiusEntry.Text,
			multiplierEntry.Text,
			startColorEntry.Text,
			endColorEntry.Text,
			textSizeEntry.Text,
		)
		if err != nil {
			dialog.ShowError(err, configWin)
			return
		}
		if err := config.SavePickerConfig(updated); err != nil {
			dialog.ShowError(err, configWin)
			return
		}
		log.Println("[UI] picker configuration saved")
		dialog.ShowInformation("Saved", "Restart to apply the new configuration.", configWin)
	})

	closeBtn := widget.NewButton("Close", func() {
		configWin.Close()
	})

	configWin.SetContent(container.NewBorder(
		nil,
		container.NewGridWithColumns(2, saveBtn, closeBtn),
		nil,
		nil,
		form,
	))
	configWin.Resize(fyne.NewSize(360, 280))
	configWin.Show()
}

// parseConfigForm turns raw entry text into a validated configuration.
func parseConfigForm(radius, multiplier, startColor, endColor, textSize string) (models.PickerConfig, error) {
	var cfg models.PickerConfig

	r, err := strconv.ParseFloat(radius, 32)
	if err != nil {
		return cfg, err
	}
	m, err := strconv.ParseFloat(multiplier, 32)
	if err != nil {
		return cfg, err
	}
	ts, err := strconv.ParseFloat(textSize, 32)
	if err != nil {
		return cfg, err
	}

	cfg = models.PickerConfig{
		Radius:           float32(r),
		HeightMultiplier: float32(m),
		StartColor:       startColor,
		EndColor:         endColor,
		TextSize:         float32(ts),
	}

	if err := validation.ValidatePickerConfig(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
