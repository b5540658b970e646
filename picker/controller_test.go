package picker

import (
	"image/color"
	"math"
	"testing"
)

func newTestController(t *testing.T, radius, multiplier float32) (*Controller, *Geometry, *manualFrameSource) {
	t.Helper()
	g, err := NewGeometry(radius, multiplier, 16, testStart, testEnd)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	g.SetViewport(100, 400) // center (50, 200)
	src := &manualFrameSource{}
	return NewController(g, src), g, src
}

func TestInitialPhaseIsIdle(t *testing.T) {
	c, g, _ := newTestController(t, 20, 4.8)

	if c.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", c.Phase())
	}
	if !sameColor(c.CommittedColor(), g.ColorAt(0.5)) {
		t.Fatal("initial committed color should be the gradient midpoint")
	}
}

func TestPressGrowsMonotonically(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	if c.Phase() != PhasePressing {
		t.Fatalf("phase after down = %v, want pressing", c.Phase())
	}

	prevRadius := g.Radius()
	prevHalf := g.HalfTrackHeight()
	for _, step := range []float32{0, 0.25, 0.5, 0.75, 1} {
		src.Step(step)
		if g.Radius() > prevRadius {
			t.Fatalf("radius increased during grow at t=%v: %v -> %v", step, prevRadius, g.Radius())
		}
		if g.HalfTrackHeight() < prevHalf {
			t.Fatalf("track shrank during grow at t=%v: %v -> %v", step, prevHalf, g.HalfTrackHeight())
		}
		prevRadius, prevHalf = g.Radius(), g.HalfTrackHeight()
	}

	if g.Radius() != g.ScaledDownRadius() {
		t.Fatalf("radius at t=1 is %v, want exactly %v", g.Radius(), g.ScaledDownRadius())
	}
	if g.HalfTrackHeight() != g.ExpandedHeight() {
		t.Fatalf("half track height at t=1 is %v, want exactly %v", g.HalfTrackHeight(), g.ExpandedHeight())
	}
}

func TestMoveTracksPointerWithinBounds(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(1) // fully grown

	upper, lower := g.UpperBound(), g.LowerBound()

	c.Handle(PointerEvent{Kind: PointerMove, Y: lower + 1000})
	if g.KnobCenterY() != lower {
		t.Fatalf("knob = %v, want clamp to lower bound %v", g.KnobCenterY(), lower)
	}

	c.Handle(PointerEvent{Kind: PointerMove, Y: upper - 1000})
	if g.KnobCenterY() != upper {
		t.Fatalf("knob = %v, want clamp to upper bound %v", g.KnobCenterY(), upper)
	}

	mid := (upper + lower) / 2
	c.Handle(PointerEvent{Kind: PointerMove, Y: mid})
	if g.KnobCenterY() != mid {
		t.Fatalf("knob = %v, want 1:1 tracking to %v", g.KnobCenterY(), mid)
	}
}

func TestMoveIgnoredOutsidePress(t *testing.T) {
	c, g, _ := newTestController(t, 20, 4.8)

	before := g.KnobCenterY()
	c.Handle(PointerEvent{Kind: PointerMove, Y: before + 40})
	if g.KnobCenterY() != before {
		t.Fatal("move mutated geometry while idle")
	}
}

func TestReleaseFarBeyondBoundCommitsEndColor(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	commits := 0
	c.SetOnCommit(func(progress float64, col color.Color) {
		commits++
		if progress != 1.0 {
			t.Errorf("committed progress = %v, want 1.0", progress)
		}
		if !sameColor(col, testEnd) {
			t.Errorf("committed color = %v, want end color", col)
		}
	})

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(1)
	c.Handle(PointerEvent{Kind: PointerMove, Y: g.CenterY() + 1000})
	c.Handle(PointerEvent{Kind: PointerUp, Y: g.CenterY() + 1000})

	if commits != 1 {
		t.Fatalf("commit fired %d times, want once", commits)
	}
	if g.Progress() != 1.0 {
		t.Fatalf("progress = %v, want 1.0", g.Progress())
	}
	if c.Phase() != PhaseReleasing {
		t.Fatalf("phase after up = %v, want releasing", c.Phase())
	}

	// Shrink runs to completion: geometry rests, phase returns to idle.
	src.Step(0.5)
	src.Step(1)
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase after shrink = %v, want idle", c.Phase())
	}
	if g.Radius() != g.OriginalRadius() {
		t.Fatalf("resting radius = %v, want %v", g.Radius(), g.OriginalRadius())
	}
	if g.HalfTrackHeight() != g.OriginalRadius() {
		t.Fatalf("resting half height = %v, want %v", g.HalfTrackHeight(), g.OriginalRadius())
	}
	if g.KnobCenterY() != g.CenterY() {
		t.Fatalf("resting knob = %v, want center %v", g.KnobCenterY(), g.CenterY())
	}
}

func TestCancelWithoutMoveKeepsPrePressValue(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(0.5) // mid-grow, knob never moved
	c.Handle(PointerEvent{Kind: PointerCancel})

	// The knob sat at the vertical center the whole time, so the committed
	// progress must stay at the midpoint, not snap to 0 or 1.
	if math.Abs(g.Progress()-0.5) > 1e-6 {
		t.Fatalf("progress after no-move cancel = %v, want 0.5", g.Progress())
	}
	if !sameColor(c.CommittedColor(), g.ColorAt(0.5)) {
		t.Fatal("committed color changed by a no-move cancel")
	}
}

func TestDegenerateBoundsKeepPreviousProgress(t *testing.T) {
	// multiplier 1 with the knob at its resting radius leaves no travel:
	// upper == lower at the moment of the release below.
	c, g, _ := newTestController(t, 20, 1)

	c.Handle(PointerEvent{Kind: PointerDown})
	// No frames: the knob has not shrunk yet, bounds are still collapsed.
	c.Handle(PointerEvent{Kind: PointerUp, Y: g.CenterY() + 50})

	if g.Progress() != 0.5 {
		t.Fatalf("progress = %v, want previous value 0.5 on degenerate bounds", g.Progress())
	}
}

func TestRepressDuringShrinkContinuesSmoothly(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(1)
	c.Handle(PointerEvent{Kind: PointerMove, Y: g.LowerBound()})
	c.Handle(PointerEvent{Kind: PointerUp, Y: g.LowerBound()})

	// Interrupt the shrink halfway.
	src.Step(0.5)
	midRadius := g.Radius()
	if midRadius <= g.ScaledDownRadius() || midRadius >= g.OriginalRadius() {
		t.Fatalf("mid-shrink radius = %v, want strictly between %v and %v",
			midRadius, g.ScaledDownRadius(), g.OriginalRadius())
	}

	c.Handle(PointerEvent{Kind: PointerDown})
	if c.Phase() != PhasePressing {
		t.Fatalf("phase after re-press = %v, want pressing", c.Phase())
	}
	if g.Radius() != midRadius {
		t.Fatalf("re-press jumped the radius from %v to %v", midRadius, g.Radius())
	}

	// The new grow starts from the intermediate geometry and still lands
	// exactly on its endpoints.
	src.Step(1)
	if g.Radius() != g.ScaledDownRadius() {
		t.Fatalf("radius after resumed grow = %v, want %v", g.Radius(), g.ScaledDownRadius())
	}
	if g.HalfTrackHeight() != g.ExpandedHeight() {
		t.Fatalf("half height after resumed grow = %v, want %v", g.HalfTrackHeight(), g.ExpandedHeight())
	}
}

func TestStaleShrinkFrameCannotCorruptNewPress(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(1)
	c.Handle(PointerEvent{Kind: PointerUp, Y: g.CenterY()})
	src.Step(0.25)

	// Capture the shrink's frame callback, then re-press. A straggling
	// shrink frame must not drag geometry toward the resting state while
	// the new press is growing.
	stale := src.tick
	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(0.5)
	radius := g.Radius()

	if stale != nil {
		stale(1)
	}
	if g.Radius() != radius {
		t.Fatalf("stale shrink frame overwrote the radius: %v -> %v", radius, g.Radius())
	}
	if c.Phase() != PhasePressing {
		t.Fatalf("stale frame flipped the phase to %v", c.Phase())
	}
}

func TestReleaseIgnoredOutsidePress(t *testing.T) {
	c, g, _ := newTestController(t, 20, 4.8)

	commits := 0
	c.SetOnCommit(func(float64, color.Color) { commits++ })

	c.Handle(PointerEvent{Kind: PointerUp, Y: g.CenterY()})
	c.Handle(PointerEvent{Kind: PointerCancel})

	if commits != 0 {
		t.Fatalf("release outside a press committed %d times", commits)
	}
	if c.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want idle", c.Phase())
	}
}

func TestCommitHappensOncePerGesture(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	commits := 0
	c.SetOnCommit(func(float64, color.Color) { commits++ })

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(1)
	for y := g.UpperBound(); y <= g.LowerBound(); y += 10 {
		c.Handle(PointerEvent{Kind: PointerMove, Y: y})
		if commits != 0 {
			t.Fatal("commit fired during drag")
		}
	}
	c.Handle(PointerEvent{Kind: PointerUp, Y: g.KnobCenterY()})
	// A duplicate release from the host (MouseUp followed by DragEnd).
	c.Handle(PointerEvent{Kind: PointerCancel})

	if commits != 1 {
		t.Fatalf("commit fired %d times for one gesture, want once", commits)
	}
}

func TestStopLeavesGeometryInPlace(t *testing.T) {
	c, g, src := newTestController(t, 20, 4.8)

	c.Handle(PointerEvent{Kind: PointerDown})
	src.Step(0.3)
	radius, half := g.Radius(), g.HalfTrackHeight()

	c.Stop()
	c.Stop() // idempotent

	if g.Radius() != radius || g.HalfTrackHeight() != half {
		t.Fatal("Stop modified geometry")
	}

	src.Step(0.9)
	if g.Radius() != radius {
		t.Fatal("frame fired after Stop")
	}
}
