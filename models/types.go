package models

// PickerConfig holds the construction-time configuration of the color
// picker. The demo application persists it to disk, so every field carries
// a JSON tag. Colors are stored as strings to keep the file hand-editable:
// either "#rrggbb" hex or an SVG color name like "red".
type PickerConfig struct {
	Radius           float32 `json:"radius"`            // Resting knob radius in device-independent pixels
	HeightMultiplier float32 `json:"height_multiplier"` // Expanded track half-height as a multiple of the radius
	StartColor       string  `json:"start_color"`       // Gradient color at the top of the strip
	EndColor         string  `json:"end_color"`         // Gradient color at the bottom of the strip
	TextSize         float32 `json:"text_size"`         // Size of the hex readout next to the picker
}
