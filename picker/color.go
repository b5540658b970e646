package picker

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorAt evaluates the configured gradient at progress, clamped to [0,1].
// The endpoints pass through untouched so that ColorAt(0) and ColorAt(1)
// reproduce the configured colors byte for byte; everything in between is a
// channel blend in RGB with the alpha interpolated alongside.
func (g *Geometry) ColorAt(progress float64) color.Color {
	return blendColors(g.startColor, g.endColor, progress)
}

// LiveColor is the gradient value under the knob's current position, used
// for the knob fill while the user is dragging.
func (g *Geometry) LiveColor() color.Color {
	return g.ColorAt(g.KnobFraction())
}

// Blend interpolates between two colors at t, clamped to [0,1], with exact
// endpoint passthrough. It is the same evaluator the widget's own gradient
// commits with, exposed so callers can reproduce its colors.
func Blend(start, end color.Color, t float64) color.Color {
	return blendColors(start, end, t)
}

func blendColors(start, end color.Color, t float64) color.Color {
	t = clamp64(t, 0, 1)
	if t == 0 {
		return start
	}
	if t == 1 {
		return end
	}

	cs, okS := colorful.MakeColor(start)
	ce, okE := colorful.MakeColor(end)
	if !okS || !okE {
		// Fully transparent endpoint: colorful cannot unpremultiply it,
		// fall back to whichever endpoint is nearer.
		if t < 0.5 {
			return start
		}
		return end
	}

	r, gr, b := cs.BlendRgb(ce, t).RGB255()

	_, _, _, sa := start.RGBA()
	_, _, _, ea := end.RGBA()
	a := uint8((float64(sa>>8)*(1-t) + float64(ea>>8)*t) + 0.5)

	return color.NRGBA{R: r, G: gr, B: b, A: a}
}

// ParseColor accepts "#rrggbb" / "#rgb" hex notation or an SVG 1.1 color
// name such as "red" or "cornflowerblue".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("picker: empty color value")
	}

	if strings.HasPrefix(s, "#") {
		if len(s) == 4 { // expand #rgb to #rrggbb
			s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("picker: invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("picker: unknown color name %q", s)
}

// FormatHex renders a color as "#RRGGBB" for display and clipboard copy.
func FormatHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
