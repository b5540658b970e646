package ui

import (
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/carotkut94/SlideColorPicker/models"
	"github.com/carotkut94/SlideColorPicker/picker"
)

// PickerAppState holds the shared state for the demo application.
// Components register callbacks here instead of referencing each other, so
// the preview card can react to picker commits without the picker knowing
// the preview exists.
type PickerAppState struct {
	// Window is the main application window, needed for dialogs
	Window fyne.Window

	// Config is the loaded picker configuration
	Config models.PickerConfig

	// SelectedProgress is the last committed selection in [0,1]
	SelectedProgress float64

	// SelectedColor is the color committed at the last release
	SelectedColor color.Color

	// OnColorCommitted is called once per committed selection
	OnColorCommitted []func(progress float64, c color.Color)
}

// NewPickerAppState seeds the state from the configuration: before the
// first commit the selection shows the gradient midpoint.
func NewPickerAppState(window fyne.Window, cfg models.PickerConfig) *PickerAppState {
	start, _ := picker.ParseColor(cfg.StartColor)
	end, _ := picker.ParseColor(cfg.EndColor)

	return &PickerAppState{
		Window:           window,
		Config:           cfg,
		SelectedProgress: 0.5,
		SelectedColor:    picker.Blend(start, end, 0.5),
	}
}

// NotifyColorCommitted records a committed selection and fans it out to
// every registered observer.
func (s *PickerAppState) NotifyColorCommitted(progress float64, c color.Color) {
	s.SelectedProgress = progress
	s.SelectedColor = c
	for _, fn := range s.OnColorCommitted {
		fn(progress, c)
	}
}
