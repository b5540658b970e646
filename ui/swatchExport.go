package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/disintegration/imaging"

	"github.com/carotkut94/SlideColorPicker/picker"
)

// BuildSwatchImage renders the configured gradient as a vertical strip with
// the committed selection marked by a thin line in the inverted color, so
// the marker stays visible on every background.
func BuildSwatchImage(start, end color.Color, progress float64) *image.NRGBA {
	img := imaging.New(SwatchStripWidth, SwatchStripHeight, color.NRGBA{})

	for y := 0; y < SwatchStripHeight; y++ {
		t := float64(y) / float64(SwatchStripHeight-1)
		c := picker.Blend(start, end, t)
		for x := 0; x < SwatchStripWidth; x++ {
			img.Set(x, y, c)
		}
	}

	markerY := int(progress * float64(SwatchStripHeight-1))
	marker := invert(picker.Blend(start, end, progress))
	for y := markerY - 1; y <= markerY+1; y++ {
		if y < 0 || y >= SwatchStripHeight {
			continue
		}
		for x := 0; x < SwatchStripWidth; x++ {
			img.Set(x, y, marker)
		}
	}

	return img
}

// ExportSwatch encodes the swatch strip as PNG to the given writer.
func ExportSwatch(w io.Writer, start, end color.Color, progress float64) error {
	img := BuildSwatchImage(start, end, progress)
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("error encoding swatch: %w", err)
	}
	log.Printf("[UI] exported gradient swatch at progress %.3f", progress)
	return nil
}

// invert returns the negative of a color, keeping its alpha.
func invert(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.NRGBA{
		R: 255 - uint8(r>>8),
		G: 255 - uint8(g>>8),
		B: 255 - uint8(b>>8),
		A: uint8(a >> 8),
	}
}
