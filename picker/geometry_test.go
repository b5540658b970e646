package picker

import (
	"image/color"
	"testing"
)

var (
	testStart = color.NRGBA{R: 0xff, A: 0xff} // red
	testEnd   = color.NRGBA{B: 0xff, A: 0xff} // blue
)

func newTestGeometry(t *testing.T, radius, multiplier float32) *Geometry {
	t.Helper()
	g, err := NewGeometry(radius, multiplier, 16, testStart, testEnd)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	g.SetViewport(100, 400) // center (50, 200)
	return g
}

func TestNewGeometryRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name       string
		radius     float32
		multiplier float32
		textSize   float32
		start, end color.Color
	}{
		{"zero radius", 0, 4.8, 16, testStart, testEnd},
		{"negative radius", -5, 4.8, 16, testStart, testEnd},
		{"multiplier below one", 20, 0.5, 16, testStart, testEnd},
		{"zero text size", 20, 4.8, 0, testStart, testEnd},
		{"missing start color", 20, 4.8, 16, nil, testEnd},
		{"missing end color", 20, 4.8, 16, testStart, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGeometry(tc.radius, tc.multiplier, tc.textSize, tc.start, tc.end); err == nil {
				t.Fatal("expected a configuration error, got nil")
			}
		})
	}
}

func TestRestingGeometry(t *testing.T) {
	tests := []struct {
		radius     float32
		multiplier float32
	}{
		{20, 4.8},
		{12, 1},
		{35, 2.5},
	}
	for _, tc := range tests {
		g := newTestGeometry(t, tc.radius, tc.multiplier)

		if g.Radius() != tc.radius {
			t.Errorf("radius at rest = %v, want %v", g.Radius(), tc.radius)
		}
		if g.HalfTrackHeight() != tc.radius {
			t.Errorf("half track height at rest = %v, want %v", g.HalfTrackHeight(), tc.radius)
		}
		if g.KnobCenterY() != g.CenterY() {
			t.Errorf("knob at rest = %v, want widget center %v", g.KnobCenterY(), g.CenterY())
		}
		if got, want := g.ExpandedHeight(), tc.radius*tc.multiplier; got != want {
			t.Errorf("expanded height = %v, want %v", got, want)
		}
		if got, want := g.ScaledDownRadius(), tc.radius*0.8; got != want {
			t.Errorf("scaled-down radius = %v, want %v", got, want)
		}
	}
}

func TestKnobClampTracksCurrentRadius(t *testing.T) {
	g := newTestGeometry(t, 20, 4.8)

	// Fully grown knob: bounds computed from the scaled-down radius.
	g.SetRadius(g.ScaledDownRadius())
	g.SetKnobCenterY(10000)
	if g.KnobCenterY() != g.LowerBound() {
		t.Fatalf("knob = %v, want lower bound %v", g.KnobCenterY(), g.LowerBound())
	}

	// Growing the knob back tightens the bounds; a fresh write must clamp
	// to the new, smaller range.
	g.SetRadius(g.OriginalRadius())
	g.SetKnobCenterY(10000)
	if g.KnobCenterY() != g.LowerBound() {
		t.Fatalf("knob = %v, want tightened lower bound %v", g.KnobCenterY(), g.LowerBound())
	}

	g.SetKnobCenterY(-10000)
	if g.KnobCenterY() != g.UpperBound() {
		t.Fatalf("knob = %v, want upper bound %v", g.KnobCenterY(), g.UpperBound())
	}

	mid := (g.UpperBound() + g.LowerBound()) / 2
	g.SetKnobCenterY(mid)
	if g.KnobCenterY() != mid {
		t.Fatalf("in-range knob position modified by clamp: %v != %v", g.KnobCenterY(), mid)
	}
}

func TestChangeNotificationFiresOnRealChangeOnly(t *testing.T) {
	g := newTestGeometry(t, 20, 4.8)

	changes := 0
	g.SetOnChange(func() { changes++ })

	g.SetRadius(18)
	if changes != 1 {
		t.Fatalf("expected 1 notification after a real change, got %d", changes)
	}

	g.SetRadius(18) // same value, no notification
	g.SetHalfTrackHeight(g.HalfTrackHeight())
	g.SetKnobCenterY(g.KnobCenterY())
	g.SetProgress(g.Progress())
	if changes != 1 {
		t.Fatalf("notification fired for a no-op write, got %d", changes)
	}

	g.SetHalfTrackHeight(50)
	g.SetProgress(0.25)
	if changes != 3 {
		t.Fatalf("expected 3 notifications, got %d", changes)
	}
}

func TestKnobFractionDegenerateBounds(t *testing.T) {
	// multiplier 1 at the resting radius collapses the bounds to a point.
	g := newTestGeometry(t, 20, 1)

	if g.UpperBound() != g.LowerBound() {
		t.Fatalf("expected degenerate bounds, got [%v, %v]", g.UpperBound(), g.LowerBound())
	}
	if got := g.KnobFraction(); got != 0.5 {
		t.Fatalf("degenerate fraction = %v, want previous progress 0.5", got)
	}
}

func TestProgressDefaultsAndClamps(t *testing.T) {
	g := newTestGeometry(t, 20, 4.8)

	if g.Progress() != 0.5 {
		t.Fatalf("default progress = %v, want 0.5", g.Progress())
	}

	g.SetProgress(1.7)
	if g.Progress() != 1 {
		t.Fatalf("progress not clamped high: %v", g.Progress())
	}
	g.SetProgress(-0.2)
	if g.Progress() != 0 {
		t.Fatalf("progress not clamped low: %v", g.Progress())
	}
}
