package picker

import "time"

// manualFrameSource delivers frames only when the test calls Step, standing
// in for the Fyne animation driver so tests control the clock.
type manualFrameSource struct {
	serial int
	tick   func(t float32)
}

func (m *manualFrameSource) Animate(d time.Duration, tick func(t float32)) func() {
	m.serial++
	id := m.serial
	m.tick = tick
	return func() {
		// Only detach if no newer run has attached since.
		if m.serial == id {
			m.tick = nil
		}
	}
}

// Step delivers one eased frame to the active run, if any.
func (m *manualFrameSource) Step(t float32) {
	if m.tick != nil {
		m.tick(t)
	}
}

// Active reports whether a run is still attached.
func (m *manualFrameSource) Active() bool { return m.tick != nil }
