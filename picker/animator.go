package picker

import (
	"time"

	"fyne.io/fyne/v2"
)

// FrameSource delivers the eased frames of a single animation run. Animate
// begins a run of the given duration and calls tick with an ease-in/ease-out
// fraction in [0,1], monotonically non-decreasing, ending on exactly 1. The
// returned function stops further ticks and may be called more than once.
//
// Production code uses the Fyne animation driver; tests substitute a
// manually stepped source so frames arrive only when the test says so.
type FrameSource interface {
	Animate(d time.Duration, tick func(t float32)) (cancel func())
}

type fyneFrameSource struct{}

// NewFyneFrameSource returns a FrameSource backed by fyne.Animation, ticking
// on the driver's paint clock with the standard ease-in/ease-out curve.
func NewFyneFrameSource() FrameSource { return fyneFrameSource{} }

func (fyneFrameSource) Animate(d time.Duration, tick func(t float32)) func() {
	anim := fyne.NewAnimation(d, tick)
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
	return anim.Stop
}

// animationRun identifies one Start call. Frame callbacks capture their run
// and check it against the animator's current one, so a frame that was
// already queued when the run was replaced falls through without touching
// geometry.
type animationRun struct {
	cancel   func()
	finished bool
}

// Animator owns at most one active interpolation run. Starting a new run
// replaces the previous one in full: its frame source is cancelled and its
// callback detached before the new callback attaches. Cancel is idempotent
// and leaves whatever the last frame wrote in place.
type Animator struct {
	source FrameSource
	run    *animationRun
}

func NewAnimator(source FrameSource) *Animator {
	return &Animator{source: source}
}

// Running reports whether a run is active, i.e. started and neither
// cancelled nor completed.
func (a *Animator) Running() bool { return a.run != nil }

// Start cancels any active run and begins a new one. tick receives the
// eased fraction; done, if non-nil, fires exactly once when the fraction
// reaches 1. A cancelled run never reaches done.
func (a *Animator) Start(d time.Duration, tick func(t float32), done func()) {
	a.Cancel()

	run := &animationRun{}
	a.run = run
	run.cancel = a.source.Animate(d, func(t float32) {
		if a.run != run || run.finished {
			return // stale frame from a replaced run
		}
		tick(t)
		if t >= 1 {
			run.finished = true
			a.run = nil
			if done != nil {
				done()
			}
		}
	})
}

// Cancel synchronously stops the active run; no further frames fire.
// Cancelling when nothing runs is a no-op.
func (a *Animator) Cancel() {
	run := a.run
	if run == nil {
		return
	}
	a.run = nil
	run.finished = true
	if run.cancel != nil {
		run.cancel()
	}
}
