package validation

import (
	"errors"
	"fmt"

	"github.com/carotkut94/SlideColorPicker/models"
	"github.com/carotkut94/SlideColorPicker/picker"
)

// ValidatePickerConfig checks a loaded configuration before any widget is
// built from it. It works on the raw config values only, no Fyne types, so
// it can run before the toolkit is initialized.
//
// Configuration errors are irrecoverable: the caller is expected to fail
// fast (or fall back to known-good defaults) rather than construct a picker
// from a partially valid config.
func ValidatePickerConfig(cfg *models.PickerConfig) error {
	if cfg == nil {
		return errors.New("missing picker configuration")
	}
	if cfg.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", cfg.Radius)
	}
	if cfg.HeightMultiplier < 1 {
		return fmt.Errorf("height multiplier must be at least 1, got %v", cfg.HeightMultiplier)
	}
	if cfg.TextSize <= 0 {
		return fmt.Errorf("text size must be positive, got %v", cfg.TextSize)
	}
	if _, err := picker.ParseColor(cfg.StartColor); err != nil {
		return fmt.Errorf("start color: %w", err)
	}
	if _, err := picker.ParseColor(cfg.EndColor); err != nil {
		return fmt.Errorf("end color: %w", err)
	}
	return nil
}
