package picker

import (
	"image/color"
	"log"
	"time"
)

// Phase is the interaction state of the picker.
type Phase int

const (
	// PhaseIdle is the resting state: small knob, collapsed track.
	PhaseIdle Phase = iota

	// PhasePressing holds while a pointer is down: the track grows into
	// the gradient strip and the knob tracks the pointer 1:1.
	PhasePressing

	// PhaseReleasing covers the collapse animation after a release. It
	// returns to PhaseIdle by itself once the animation completes.
	PhaseReleasing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePressing:
		return "pressing"
	case PhaseReleasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// Grow and shrink share one duration so an interrupted shrink resumes into
// a grow at the same pace.
const transitionDuration = 200 * time.Millisecond

// Controller turns the pointer event stream into geometry mutations. It is
// the sole writer of its Geometry and owns the single animation run that
// drives transitions between the resting and expanded visual states.
//
// Single-threaded by contract: events and animation frames both arrive on
// the driver's event loop, so there is no locking anywhere in the core.
type Controller struct {
	geom  *Geometry
	anim  *Animator
	phase Phase

	committed color.Color
	onCommit  func(progress float64, c color.Color)
}

func NewController(geom *Geometry, source FrameSource) *Controller {
	return &Controller{
		geom:      geom,
		anim:      NewAnimator(source),
		phase:     PhaseIdle,
		committed: geom.ColorAt(geom.Progress()),
	}
}

// Phase reports the current interaction state.
func (c *Controller) Phase() Phase { return c.phase }

// Stop cancels any in-flight animation, leaving geometry as the last frame
// wrote it. Used when the widget is torn down.
func (c *Controller) Stop() { c.anim.Cancel() }

// CommittedColor is the solid color selected at the last release.
func (c *Controller) CommittedColor() color.Color { return c.committed }

// SetOnCommit registers the observer fired once per release with the new
// progress value and its color. It is never fired during a drag.
func (c *Controller) SetOnCommit(fn func(progress float64, c color.Color)) {
	c.onCommit = fn
}

// Handle feeds one pointer event through the state machine.
func (c *Controller) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.press()
	case PointerMove:
		if c.phase != PhasePressing {
			return
		}
		c.geom.SetKnobCenterY(ev.Y)
	case PointerUp:
		c.release(ev.Y)
	case PointerCancel:
		c.release(c.geom.KnobCenterY())
	default:
		log.Printf("[picker] ignoring pointer event of unknown kind %d", ev.Kind)
	}
}

// press starts the grow animation. Geometry animates from wherever it
// currently holds, so a press that lands mid-shrink continues smoothly
// instead of snapping back to the resting state first.
func (c *Controller) press() {
	c.anim.Cancel()
	c.phase = PhasePressing

	g := c.geom
	fromRadius := g.Radius()
	fromHalf := g.HalfTrackHeight()

	c.anim.Start(transitionDuration, func(t float32) {
		g.SetRadius(lerp32(fromRadius, g.ScaledDownRadius(), t))
		g.SetHalfTrackHeight(lerp32(fromHalf, g.ExpandedHeight(), t))
	}, nil)
}

// release commits the selection from the vertical position y and starts the
// shrink animation. Only a press can be released; a stray up or cancel in
// any other phase is dropped.
func (c *Controller) release(y float32) {
	if c.phase != PhasePressing {
		return
	}
	c.anim.Cancel()

	g := c.geom
	upper, lower := g.UpperBound(), g.LowerBound()
	progress := g.Progress()
	if lower > upper {
		progress = float64((clamp32(y, upper, lower) - upper) / (lower - upper))
	}
	// lower == upper means the knob has no room to move; the previous
	// committed value stands rather than a 0/0.

	g.SetProgress(progress)
	c.committed = g.ColorAt(progress)
	c.phase = PhaseReleasing

	fromRadius := g.Radius()
	fromHalf := g.HalfTrackHeight()
	fromKnob := g.KnobCenterY()
	restY := g.CenterY()

	// One t drives all three quantities so the knob glide and the track
	// collapse stay visually synchronized.
	c.anim.Start(transitionDuration, func(t float32) {
		g.SetRadius(lerp32(fromRadius, g.OriginalRadius(), t))
		g.SetHalfTrackHeight(lerp32(fromHalf, g.OriginalRadius(), t))
		g.SetKnobCenterY(lerp32(fromKnob, restY, t))
	}, func() {
		c.phase = PhaseIdle
	})

	if c.onCommit != nil {
		c.onCommit(progress, c.committed)
	}
}
