package ui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/RonSheely/circe/pkg/schematic"
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/RonSheely/circe/pkg/viewport"
)

// CanvasView hosts the viewport engine inside a Gio layout. It drains the raw
// input events, hands each one to the engine and to the schematic content,
// and maintains the layered draw caches the engine's invalidation signals
// refer to.
//
// Three layers stack bottom to top: background (cleared only on resize),
// passive (grid, origin marker, placed devices; cleared when the transform or
// the content changes) and the per-frame transient layer (cursor marker,
// marquee, hover highlights), which is not cached at all.
type CanvasView struct {
	theme *material.Theme
	vp    *viewport.Viewport
	sch   *schematic.Schematic

	background Layer
	passive    Layer

	size    image.Point
	inside  bool
	lastPos transforms.CSPoint
}

// NewCanvasView wires a viewport and its content. The viewport's Content must
// be the same schematic so fit-to-content sees the placed devices.
func NewCanvasView(theme *material.Theme, vp *viewport.Viewport, sch *schematic.Schematic) *CanvasView {
	return &CanvasView{theme: theme, vp: vp, sch: sch}
}

// Viewport returns the hosted engine, for toolbar readouts.
func (c *CanvasView) Viewport() *viewport.Viewport { return c.vp }

// Layout processes this frame's input and draws the canvas.
func (c *CanvasView) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != c.size {
		c.size = size
		c.background.Invalidate()
		c.passive.Invalidate()
	}
	bounds := transforms.CSBoxFromPoints(
		transforms.CSPoint{},
		transforms.CSPoint{X: float32(size.X), Y: float32(size.Y)},
	)

	for {
		ev, ok := gtx.Event(
			pointer.Filter{
				Target: c,
				Kinds: pointer.Press | pointer.Release | pointer.Move |
					pointer.Drag | pointer.Scroll | pointer.Enter | pointer.Leave,
				ScrollY: pointer.ScrollRange{Min: -10, Max: 10},
			},
			key.Filter{Name: "F"},
			key.Filter{Name: "R"},
			key.Filter{Name: "C"},
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameDeleteForward},
			key.Filter{Name: key.NameDeleteBackward},
		)
		if !ok {
			break
		}
		c.handleEvent(ev, bounds)
	}

	// Input region.
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	area.Pop()

	c.background.Add(gtx, func(gtx layout.Context) {
		paint.FillShape(gtx.Ops, colorBackground, clip.Rect{Max: c.size}.Op())
	})
	c.passive.Add(gtx, c.drawPassive)
	c.drawActive(gtx)

	return layout.Dimensions{Size: size}
}

// handleEvent feeds one raw event to the engine and then forwards it to the
// content. Both consumers see the same event; the engine does not claim
// exclusivity.
func (c *CanvasView) handleEvent(ev event.Event, bounds transforms.CSBox) {
	var pos *transforms.CSPoint
	switch e := ev.(type) {
	case pointer.Event:
		switch e.Kind {
		case pointer.Leave, pointer.Cancel:
			c.inside = false
		default:
			p := transforms.CSPoint{X: e.Position.X, Y: e.Position.Y}
			if bounds.Contains(p) {
				c.inside = true
				c.lastPos = p
				pos = &p
			} else {
				c.inside = false
			}
		}
	case key.Event:
		// Key events carry no position; use the last known cursor while
		// the pointer is over the canvas.
		if c.inside {
			p := c.lastPos
			pos = &p
		}
	}

	resp := c.vp.Event(ev, pos, bounds)
	if resp.ClearPassive {
		c.passive.Invalidate()
	}

	var vpos *transforms.VSPoint
	if pos != nil {
		v := c.vp.Cursor().Viewport
		vpos = &v
	}
	if c.sch.HandleEvent(ev, vpos) {
		c.passive.Invalidate()
	}
}

// drawPassive paints the mostly-static layer: grid, origin marker and the
// placed devices.
func (c *CanvasView) drawPassive(gtx layout.Context) {
	bounds := transforms.CSBoxFromPoints(
		transforms.CSPoint{},
		transforms.CSPoint{X: float32(c.size.X), Y: float32(c.size.Y)},
	)
	scale := c.vp.Transform().Scale()

	gridWidth := clampF(0.5*scale/16, 0.5, 1.5)
	strokeSegments(gtx.Ops, c.vp.GridLines(bounds), gridWidth, colorGrid)

	segs, circ := c.vp.OriginMarker()
	originWidth := clampF(0.1*scale, 0.1, 3.0)
	strokeSegments(gtx.Ops, segs, originWidth, colorGrid)
	strokeCircle(gtx.Ops, circ, originWidth, colorGrid)

	for _, d := range c.sch.Devices() {
		c.drawDevice(gtx, d, colorDevice)
	}
}

// drawActive paints the transient layer: hover highlights, the marquee and
// the snapped cursor marker. Redrawn every frame.
func (c *CanvasView) drawActive(gtx layout.Context) {
	for _, d := range c.sch.Devices() {
		if d.Tentative {
			c.drawDevice(gtx, d, colorTentative)
		}
	}

	if p0, p1, ok := c.vp.Marquee(); ok {
		col := colorMarqueeUp
		if p1.Y > p0.Y {
			// Dragging downward selects top-down; tint it differently
			// the way selection direction is usually signalled.
			col = colorMarqueeDn
		}
		fillRect(gtx.Ops, transforms.CSBoxFromPoints(p0, p1), col)
	}

	if c.inside {
		strokeRect(gtx.Ops, c.vp.CursorMarker(), 1.0, colorCursor)
	}
}

func (c *CanvasView) drawDevice(gtx layout.Context, d *schematic.Device, col color.NRGBA) {
	vct := c.vp.Transform()
	b := d.Bounds().ToVS()
	r := transforms.CSBoxFromPoints(vct.ToCanvas(b.Min), vct.ToCanvas(b.Max))
	strokeRect(gtx.Ops, r, 1.5, col)

	lbl := material.Label(c.theme, unit.Sp(12), d.Designator)
	lbl.Color = colorLabel
	offset := op.Offset(image.Pt(int(r.Min.X), int(r.Min.Y)-16)).Push(gtx.Ops)
	lbl.Layout(gtx)
	offset.Pop()
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
