package picker

import (
	"fmt"
	"image/color"
)

// knobScaleFactor is how far the knob shrinks while the track is expanded.
// The smaller knob leaves room for the finger to see the gradient underneath.
const knobScaleFactor = 0.8

// Geometry holds the mutable visual state of the picker: the knob radius,
// the half-height of the track, the vertical center of the knob and the last
// committed selection value. Everything else is either fixed at construction
// or derived on demand.
//
// The controller is the only writer; the renderer only reads. Each setter
// compares old and new values and fires the change callback only when the
// stored value actually changes, so a frame that computes the same value
// does not schedule a spurious redraw.
type Geometry struct {
	// Fixed at construction
	originalRadius   float32
	heightMultiplier float32
	textSize         float32
	startColor       color.Color
	endColor         color.Color

	// Re-derived whenever the widget is allocated a new size
	centerX float32
	centerY float32
	sized   bool

	// Mutated by the controller, one write per animation frame or move event
	radius          float32
	halfTrackHeight float32
	knobCenterY     float32
	progress        float64

	onChange func()
}

// NewGeometry validates the construction-time configuration and returns the
// resting-state geometry. Invalid configuration is rejected here, before any
// derived quantity is computed.
func NewGeometry(originalRadius, heightMultiplier, textSize float32, start, end color.Color) (*Geometry, error) {
	if originalRadius <= 0 {
		return nil, fmt.Errorf("picker: radius must be positive, got %v", originalRadius)
	}
	if heightMultiplier < 1 {
		return nil, fmt.Errorf("picker: height multiplier must be at least 1, got %v", heightMultiplier)
	}
	if textSize <= 0 {
		return nil, fmt.Errorf("picker: text size must be positive, got %v", textSize)
	}
	if start == nil || end == nil {
		return nil, fmt.Errorf("picker: both gradient colors must be set")
	}

	return &Geometry{
		originalRadius:   originalRadius,
		heightMultiplier: heightMultiplier,
		textSize:         textSize,
		startColor:       start,
		endColor:         end,
		radius:           originalRadius,
		halfTrackHeight:  originalRadius,
		progress:         0.5,
	}, nil
}

// SetOnChange registers the callback fired after every distinct write.
// The widget uses it to schedule a redraw.
func (g *Geometry) SetOnChange(fn func()) { g.onChange = fn }

func (g *Geometry) notify() {
	if g.onChange != nil {
		g.onChange()
	}
}

// SetViewport recomputes the widget center from a newly allocated size.
// The first allocation also rests the knob at the vertical center.
func (g *Geometry) SetViewport(width, height float32) {
	cx, cy := width/2, height/2
	if g.sized && cx == g.centerX && cy == g.centerY {
		return
	}
	first := !g.sized
	g.centerX, g.centerY = cx, cy
	g.sized = true
	if first {
		g.knobCenterY = cy
	}
	g.notify()
}

// Accessors for the fixed and derived quantities.

func (g *Geometry) OriginalRadius() float32 { return g.originalRadius }
func (g *Geometry) TextSize() float32       { return g.textSize }
func (g *Geometry) StartColor() color.Color { return g.startColor }
func (g *Geometry) EndColor() color.Color   { return g.endColor }
func (g *Geometry) CenterX() float32        { return g.centerX }
func (g *Geometry) CenterY() float32        { return g.centerY }

// ExpandedHeight is the half-height of the fully grown track.
func (g *Geometry) ExpandedHeight() float32 {
	return g.originalRadius * g.heightMultiplier
}

// ScaledDownRadius is the knob radius while the track is expanded.
func (g *Geometry) ScaledDownRadius() float32 {
	return g.originalRadius * knobScaleFactor
}

// UpperBound is the highest allowed knob center. It depends on the current
// radius, so it moves every frame while the knob grows or shrinks.
func (g *Geometry) UpperBound() float32 {
	return g.centerY - g.ExpandedHeight() + g.radius
}

// LowerBound is the lowest allowed knob center, again for the current radius.
func (g *Geometry) LowerBound() float32 {
	return g.centerY + g.ExpandedHeight() - g.radius
}

// Accessors and clamped setters for the animated quantities.

func (g *Geometry) Radius() float32 { return g.radius }

func (g *Geometry) SetRadius(v float32) {
	if v == g.radius {
		return
	}
	g.radius = v
	g.notify()
}

func (g *Geometry) HalfTrackHeight() float32 { return g.halfTrackHeight }

func (g *Geometry) SetHalfTrackHeight(v float32) {
	if v == g.halfTrackHeight {
		return
	}
	g.halfTrackHeight = v
	g.notify()
}

func (g *Geometry) KnobCenterY() float32 { return g.knobCenterY }

// SetKnobCenterY clamps v into [UpperBound, LowerBound] before storing it.
// The clamp uses the current radius: the bounds tighten as the knob grows,
// so a position that was legal a frame ago may not be legal now.
func (g *Geometry) SetKnobCenterY(v float32) {
	v = clamp32(v, g.UpperBound(), g.LowerBound())
	if v == g.knobCenterY {
		return
	}
	g.knobCenterY = v
	g.notify()
}

// Progress is the last committed selection value in [0,1]. It is updated
// once per release, never continuously during a drag.
func (g *Geometry) Progress() float64 { return g.progress }

func (g *Geometry) SetProgress(v float64) {
	v = clamp64(v, 0, 1)
	if v == g.progress {
		return
	}
	g.progress = v
	g.notify()
}

// KnobFraction reports where the knob currently sits between its bounds as
// a value in [0,1]. When the bounds collapse to a single point there is no
// meaningful position, so the last committed progress stands in.
func (g *Geometry) KnobFraction() float64 {
	upper, lower := g.UpperBound(), g.LowerBound()
	if lower <= upper {
		return g.progress
	}
	return float64((g.knobCenterY - upper) / (lower - upper))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp32(from, to, t float32) float32 {
	return from + (to-from)*t
}
