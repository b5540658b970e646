package picker

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/carotkut94/SlideColorPicker/models"
)

// SlideColorPicker is a press-and-slide color selector. At rest it shows a
// small pill with the last selected color; holding a pointer on it expands
// the pill into a vertical gradient strip, dragging slides the knob along
// the gradient, and releasing commits the color under the knob and
// collapses the strip again.
type SlideColorPicker struct {
	widget.BaseWidget

	geom *Geometry
	ctrl *Controller

	// OnChanged fires once per committed selection, never during a drag.
	OnChanged func(progress float64, c color.Color)
}

var _ desktop.Mouseable = (*SlideColorPicker)(nil)
var _ fyne.Draggable = (*SlideColorPicker)(nil)
var _ mobile.Touchable = (*SlideColorPicker)(nil)

// New builds a picker from explicit configuration values. Invalid values
// (non-positive radius, multiplier below 1) are rejected before any widget
// state is created.
func New(radius, heightMultiplier, textSize float32, start, end color.Color) (*SlideColorPicker, error) {
	geom, err := NewGeometry(radius, heightMultiplier, textSize, start, end)
	if err != nil {
		return nil, err
	}

	p := &SlideColorPicker{
		geom: geom,
		ctrl: NewController(geom, NewFyneFrameSource()),
	}
	geom.SetOnChange(p.Refresh)
	p.ctrl.SetOnCommit(func(v float64, c color.Color) {
		if p.OnChanged != nil {
			p.OnChanged(v, c)
		}
	})
	p.ExtendBaseWidget(p)
	return p, nil
}

// NewFromConfig builds a picker from a parsed configuration file entry.
func NewFromConfig(cfg models.PickerConfig) (*SlideColorPicker, error) {
	start, err := ParseColor(cfg.StartColor)
	if err != nil {
		return nil, err
	}
	end, err := ParseColor(cfg.EndColor)
	if err != nil {
		return nil, err
	}
	return New(cfg.Radius, cfg.HeightMultiplier, cfg.TextSize, start, end)
}

// Progress is the last committed selection value in [0,1].
func (p *SlideColorPicker) Progress() float64 { return p.geom.Progress() }

// SelectedColor is the solid color committed at the last release.
func (p *SlideColorPicker) SelectedColor() color.Color { return p.ctrl.CommittedColor() }

// Phase reports the current interaction state, mainly for tests.
func (p *SlideColorPicker) Phase() Phase { return p.ctrl.Phase() }

// Pointer plumbing. Desktop presses arrive via Mouseable, drags via
// Draggable, and mobile touches via Touchable; all four feed the same
// event stream. A desktop release can surface as both MouseUp and DragEnd,
// which is harmless as the controller drops a release outside a press.

func (p *SlideColorPicker) MouseDown(ev *desktop.MouseEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerDown, Y: ev.Position.Y})
}

func (p *SlideColorPicker) MouseUp(ev *desktop.MouseEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerUp, Y: ev.Position.Y})
}

func (p *SlideColorPicker) Dragged(ev *fyne.DragEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerMove, Y: ev.Position.Y})
}

func (p *SlideColorPicker) DragEnd() {
	p.ctrl.Handle(PointerEvent{Kind: PointerCancel})
}

func (p *SlideColorPicker) TouchDown(ev *mobile.TouchEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerDown, Y: ev.Position.Y})
}

func (p *SlideColorPicker) TouchUp(ev *mobile.TouchEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerUp, Y: ev.Position.Y})
}

func (p *SlideColorPicker) TouchCancel(ev *mobile.TouchEvent) {
	p.ctrl.Handle(PointerEvent{Kind: PointerCancel})
}

// CreateRenderer implements fyne.Widget.
func (p *SlideColorPicker) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(p.ctrl.CommittedColor())
	track.CornerRadius = p.geom.OriginalRadius()

	gradient := canvas.NewVerticalGradient(p.geom.StartColor(), p.geom.EndColor())
	gradient.Hide()

	knob := canvas.NewCircle(p.ctrl.CommittedColor())

	return &pickerRenderer{
		picker:   p,
		track:    track,
		gradient: gradient,
		knob:     knob,
	}
}

type pickerRenderer struct {
	picker   *SlideColorPicker
	track    *canvas.Rectangle
	gradient *canvas.LinearGradient
	knob     *canvas.Circle
}

func (r *pickerRenderer) Layout(size fyne.Size) {
	r.picker.geom.SetViewport(size.Width, size.Height)
	r.position()
}

func (r *pickerRenderer) MinSize() fyne.Size {
	g := r.picker.geom
	return fyne.NewSize(2*g.OriginalRadius(), 2*g.ExpandedHeight())
}

func (r *pickerRenderer) position() {
	g := r.picker.geom
	cx, cy := g.CenterX(), g.CenterY()

	halfW := g.OriginalRadius()
	halfH := g.HalfTrackHeight()
	trackSize := fyne.NewSize(2*halfW, 2*halfH)
	trackPos := fyne.NewPos(cx-halfW, cy-halfH)
	r.track.Resize(trackSize)
	r.track.Move(trackPos)
	r.gradient.Resize(trackSize)
	r.gradient.Move(trackPos)

	rad := g.Radius()
	r.knob.Resize(fyne.NewSize(2*rad, 2*rad))
	r.knob.Move(fyne.NewPos(cx-rad, g.KnobCenterY()-rad))
}

func (r *pickerRenderer) Refresh() {
	r.position()

	if r.picker.ctrl.Phase() == PhasePressing {
		// Live gradient strip with the knob sampling it.
		r.track.Hide()
		r.gradient.Show()
		r.knob.FillColor = r.picker.geom.LiveColor()
	} else {
		r.gradient.Hide()
		r.track.Show()
		r.track.FillColor = r.picker.ctrl.CommittedColor()
		r.knob.FillColor = r.picker.ctrl.CommittedColor()
	}

	r.track.Refresh()
	r.gradient.Refresh()
	r.knob.Refresh()
}

func (r *pickerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.gradient, r.track, r.knob}
}

func (r *pickerRenderer) Destroy() {
	r.picker.ctrl.Stop()
}
