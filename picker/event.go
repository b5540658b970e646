package picker

// PointerEventKind enumerates the pointer actions the controller reacts to.
// The set is closed on purpose: the controller switches over it exhaustively,
// so a new kind cannot be added without touching the state machine.
type PointerEventKind int

const (
	// PointerDown starts a press. Position is irrelevant; the knob does
	// not jump to the touch point.
	PointerDown PointerEventKind = iota

	// PointerMove drags the knob to Y with 1:1 tracking, no animation.
	PointerMove

	// PointerUp releases at Y and commits the selection.
	PointerUp

	// PointerCancel releases without a coordinate; the selection commits
	// from wherever the knob currently sits.
	PointerCancel
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer action in the widget's local coordinate space.
// Y is meaningful for Move and Up only.
type PointerEvent struct {
	Kind PointerEventKind
	Y    float32
}
