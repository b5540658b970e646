package ui

import (
	"image/color"
)

// Theme constants define the visual appearance of the demo application.
// Centralizing these values keeps the look consistent across components
// and makes it easy to restyle the whole demo in one place.

// Color palette for the application chrome
var (
	// BackgroundStartColor is the lighter purple at the start of the window gradient
	BackgroundStartColor = color.RGBA{R: 115, G: 103, B: 240, A: 255}

	// BackgroundEndColor is the darker purple at the end of the window gradient
	BackgroundEndColor = color.RGBA{R: 136, G: 84, B: 208, A: 255}

	// CardBackgroundColor is the white used for card backgrounds
	CardBackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// TextColorLight is used for text on the gradient background
	TextColorLight = color.White
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the main application title
	TitleTextSize = 36

	// SubtitleTextSize is used for descriptive text below the title
	SubtitleTextSize = 14

	// FooterTextSize is used for footer text
	FooterTextSize = 12
)

// Layout constants
const (
	// BackgroundGradientAngle is the angle of the window gradient in degrees
	BackgroundGradientAngle = 45

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 100

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 640

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 480

	// SwatchStripWidth is the pixel width of exported gradient swatches
	SwatchStripWidth = 64

	// SwatchStripHeight is the pixel height of exported gradient swatches
	SwatchStripHeight = 512
)
