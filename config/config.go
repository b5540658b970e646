package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/carotkut94/SlideColorPicker/models"
	"github.com/carotkut94/SlideColorPicker/validation"
)

// DefaultPickerConfig mirrors the stock look of the widget: a 20px knob
// that expands to 4.8 times its radius, sliding between red and blue.
func DefaultPickerConfig() models.PickerConfig {
	return models.PickerConfig{
		Radius:           20,
		HeightMultiplier: 4.8,
		StartColor:       "red",
		EndColor:         "blue",
		TextSize:         16,
	}
}

// LoadPickerConfig reads the picker configuration from
// ~/.config/slidecolorpicker/picker.json, creating it from defaults when
// missing. A file that cannot be read or fails validation is logged and
// replaced by the defaults rather than aborting the application.
func LoadPickerConfig() models.PickerConfig {
	configLocation, err := verifyConfigFiles()
	if err != nil {
		log.Printf("[config] error verifying config files: %v", err)
		return DefaultPickerConfig()
	}

	file, err := os.Open(configLocation)
	if err != nil {
		log.Printf("[config] error opening picker config: %v", err)
		return DefaultPickerConfig()
	}
	defer file.Close()

	byteValues, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[config] error reading picker config: %v", err)
		return DefaultPickerConfig()
	}

	var cfg models.PickerConfig
	if err := json.Unmarshal(byteValues, &cfg); err != nil {
		log.Printf("[config] error unmarshalling picker config: %v", err)
		return DefaultPickerConfig()
	}

	if err := validation.ValidatePickerConfig(&cfg); err != nil {
		log.Printf("[config] invalid picker config, using defaults: %v", err)
		return DefaultPickerConfig()
	}

	return cfg
}

// SavePickerConfig writes the configuration to
// ~/.config/slidecolorpicker/picker.json.
func SavePickerConfig(cfg models.PickerConfig) error {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return fmt.Errorf("error verifying config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "picker.json")

	jsonData, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, jsonData, 0644)
}

// check config directory exists or create it
func verifyConfigDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	configDirectory := filepath.Join(home, ".config", "slidecolorpicker")

	_, err = os.Stat(configDirectory)

	if os.IsNotExist(err) {
		if err := os.MkdirAll(configDirectory, 0755); err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("[config] directory %s created", configDirectory)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// check config file exists or create it from defaults
func verifyConfigFiles() (string, error) {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return "", err
	}

	configFile := filepath.Join(configDir, "picker.json")

	_, err = os.Stat(configFile)

	if os.IsNotExist(err) {
		log.Printf("[config] picker config not found, creating defaults at '%s'", configFile)
		if saveErr := SavePickerConfig(DefaultPickerConfig()); saveErr != nil {
			return "", fmt.Errorf("error creating picker config: %w", saveErr)
		}
	} else if err != nil {
		return "", fmt.Errorf("error checking file existence: %w", err)
	}

	return configFile, nil
}
