// Package viewport converts raw pointer and keyboard input into pan, zoom and
// fit operations on the canvas/viewport transform, tracks the cursor in all
// three coordinate spaces, and tells the rendering layer when its cached
// layers are stale.
//
// The engine is single-threaded and synchronous: one call per input event, in
// delivery order, on the thread that owns the UI loop. It never draws and
// never touches the render caches; it only reports the invalidation decision.
package viewport

import (
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/RonSheely/circe/pkg/transforms"
)

// Cursor is the tracked cursor position in all three spaces. The three fields
// are recomputed together whenever the raw cursor or the transform changes,
// so they always describe the same instant.
type Cursor struct {
	Canvas    transforms.CSPoint
	Viewport  transforms.VSPoint
	Schematic transforms.SSPoint
}

// Response reports what an event did. TransformChanged means the committed
// transform is new; ClearPassive tells the rendering layer to discard its
// mostly-static cached layer. Cursor motion alone changes neither: the
// transient layer is redrawn every frame anyway, and forcing a full
// invalidation on every mouse move would defeat the caching.
type Response struct {
	TransformChanged bool
	ClearPassive     bool
	Processed        bool
}

// Content is the collaborator displayed through the viewport. The engine only
// needs its bounds, for fitting the view to everything; drawing and
// domain-specific event handling stay with the owner.
type Content interface {
	// Bounds returns the bounding box of all content in viewport space.
	Bounds() transforms.VSBox
	// HandleEvent processes the residual event with the cursor in viewport
	// space, nil when the cursor is outside the canvas. It reports whether
	// content changed in a way that invalidates the passive layer.
	HandleEvent(ev event.Event, pos *transforms.VSPoint) bool
}

// Config carries the viewport limits and initial placement.
type Config struct {
	// MinScale is the most zoomed out: viewport units per canvas pixel at
	// the limit.
	MinScale float32
	// MaxScale is the most zoomed in.
	MaxScale float32
	// InitialScale is the scale at construction.
	InitialScale float32
	// SnapScale scales the displayed grid granularity. It affects overlay
	// geometry only, never the transform.
	SnapScale float32
	// FreeAspect selects per-axis zoom clamping instead of uniform.
	FreeAspect bool
}

// DefaultConfig matches the schematic editor defaults: 1 px per unit zoomed
// all the way out, 100 px per unit zoomed all the way in, starting at 10.
func DefaultConfig() Config {
	return Config{
		MinScale:     1.0,
		MaxScale:     100.0,
		InitialScale: 10.0,
		SnapScale:    1.0,
	}
}

// marqueeDeadband is the canvas-pixel distance the cursor must travel from
// the marquee anchor before the second corner starts tracking it. Keeps an
// accidental micro-drag from registering as a region.
const marqueeDeadband = 10.0

// contentFitMargin is the viewport-space margin added around the content
// bounds when fitting the view to content.
const contentFitMargin = 5.0

// Viewport owns the interaction state, the committed transform and the
// tracked cursor. All mutation goes through Event and DisplayBounds.
type Viewport struct {
	cfg     Config
	policy  ScalePolicy
	content Content

	state State
	vct   transforms.VCTransform
	cur   Cursor
}

// New creates an idle viewport at the configured initial scale, origin at the
// canvas top-left corner. content may be nil; fit-to-content is then a no-op.
func New(cfg Config, content Content) *Viewport {
	var policy ScalePolicy
	if cfg.FreeAspect {
		policy = FreeAspectPolicy{Min: cfg.MinScale, Max: cfg.MaxScale}
	} else {
		policy = UniformPolicy{Min: cfg.MinScale, Max: cfg.MaxScale}
	}
	return &Viewport{
		cfg:     cfg,
		policy:  policy,
		content: content,
		vct:     transforms.NewVCTransform(cfg.InitialScale, transforms.CSVec{}),
	}
}

// Transform returns the committed viewport-to-canvas transform.
func (v *Viewport) Transform() transforms.VCTransform { return v.vct }

// Cursor returns the tracked cursor triple.
func (v *Viewport) Cursor() Cursor { return v.cur }

// State returns the current interaction state.
func (v *Viewport) State() State { return v.state }

// Config returns the viewport configuration.
func (v *Viewport) Config() Config { return v.cfg }

// Event processes one raw input event. pos is the cursor position in canvas
// space, nil when the pointer is outside the addressable region; absence is a
// valid input meaning no cursor-dependent state is updated this tick. bounds
// is the canvas rectangle, used as the fit target.
//
// The same event is expected to also be forwarded to the content
// collaborator by the owner; the viewport does not consume exclusively.
func (v *Viewport) Event(ev event.Event, pos *transforms.CSPoint, bounds transforms.CSBox) Response {
	if pos == nil {
		return Response{}
	}
	v.curposUpdate(*pos)

	switch e := ev.(type) {
	case pointer.Event:
		return v.pointerEvent(e, *pos, bounds)
	case key.Event:
		return v.keyEvent(e, bounds)
	}
	return Response{}
}

func (v *Viewport) pointerEvent(e pointer.Event, pos transforms.CSPoint, bounds transforms.CSBox) Response {
	resp := Response{Processed: true}

	switch {
	// Zooming works in every state.
	case e.Kind == pointer.Scroll:
		// Gio reports scroll-down as positive Y; wheel-up zooms in.
		y := -e.Scroll.Y
		v.zoom(1 + clamp32(y, -5, 5)/5)
		resp.TransformChanged = true
		resp.ClearPassive = true

	case e.Kind == pointer.Press && e.Buttons.Contain(pointer.ButtonTertiary) && v.state.Kind == StateIdle:
		v.state = State{Kind: StatePanning, Anchor: pos}

	case e.Kind == pointer.Press && e.Buttons.Contain(pointer.ButtonSecondary) && v.state.Kind == StateIdle:
		vsp := v.cur.Viewport
		v.state = State{Kind: StateNewView, P0: vsp, P1: vsp}

	case e.Kind == pointer.Move || e.Kind == pointer.Drag:
		switch v.state.Kind {
		case StatePanning:
			d := pos.Sub(v.state.Anchor)
			v.pan(v.vct.ToViewportVec(d))
			v.state.Anchor = pos
			resp.TransformChanged = true
			resp.ClearPassive = true
		case StateNewView:
			if v.vct.ToCanvas(v.state.P0).Dist(pos) > marqueeDeadband {
				v.state.P1 = v.cur.Viewport
			} else {
				v.state.P1 = v.state.P0
			}
		default:
			// Idle: the cursor triple was refreshed on entry; nothing else.
		}

	case e.Kind == pointer.Release && v.state.Kind == StatePanning && !e.Buttons.Contain(pointer.ButtonTertiary):
		v.state = State{Kind: StateIdle}

	case e.Kind == pointer.Release && v.state.Kind == StateNewView && !e.Buttons.Contain(pointer.ButtonSecondary):
		if v.state.P1 != v.state.P0 {
			v.DisplayBounds(bounds, transforms.VSBoxFromPoints(v.state.P0, v.state.P1))
			resp.TransformChanged = true
			resp.ClearPassive = true
		}
		v.state = State{Kind: StateIdle}

	default:
		resp.Processed = false
	}
	return resp
}

func (v *Viewport) keyEvent(e key.Event, bounds transforms.CSBox) Response {
	if e.State != key.Press {
		return Response{}
	}
	switch {
	case e.Name == key.NameEscape && e.Modifiers == 0 && v.state.Kind == StateNewView:
		// Cancel the marquee; the transform stays as it was.
		v.state = State{Kind: StateIdle}
		return Response{Processed: true}

	case e.Name == "F" && v.state.Kind == StateIdle:
		if v.content == nil {
			return Response{Processed: true}
		}
		vsb := v.content.Bounds()
		if vsb.IsEmpty() {
			return Response{Processed: true}
		}
		v.DisplayBounds(bounds, vsb.Inflate(contentFitMargin, contentFitMargin))
		return Response{TransformChanged: true, ClearPassive: true, Processed: true}
	}
	return Response{}
}

// DisplayBounds commits the transform that makes vsb visible inside csb and
// refreshes the cursor triple, which would otherwise be stale until the next
// cursor move.
func (v *Viewport) DisplayBounds(csb transforms.CSBox, vsb transforms.VSBox) {
	v.vct = transforms.FitBounds(csb, vsb, v.cfg.MinScale, v.cfg.MaxScale)
	v.curposUpdate(v.cur.Canvas)
}

// zoom applies a relative scale factor anchored at the current cursor:
// rescale through the policy first, then re-translate so the viewport point
// that was under the cursor maps back to the same canvas point. Recentering
// after clamping keeps the zoom anchored at the limits instead of drifting.
func (v *Viewport) zoom(k float32) {
	csp, vsp := v.cur.Canvas, v.cur.Viewport
	nt := v.policy.Rescale(v.vct, k)
	nt = nt.ThenTranslate(csp.Sub(nt.ToCanvas(vsp)))
	v.vct = nt
	v.curposUpdate(v.cur.Canvas)
}

// pan translates the view by a viewport-space vector.
func (v *Viewport) pan(d transforms.VSVec) {
	v.vct = v.vct.PreTranslate(d)
	v.curposUpdate(v.cur.Canvas)
}

// curposUpdate recomputes the cursor triple from a canvas position. The three
// values are stored together so readers never observe a mix of old and new.
func (v *Viewport) curposUpdate(csp transforms.CSPoint) {
	vsp := v.vct.ToViewport(csp)
	v.cur = Cursor{
		Canvas:    csp,
		Viewport:  vsp,
		Schematic: vsp.Round(),
	}
}
