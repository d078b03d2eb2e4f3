package viewport

import (
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/chewxy/math32"
)

// Overlay geometry. The viewport derives line segments and markers from the
// committed transform; the rendering layer decides stroke widths and colors
// and does the actual painting.

// Segment is a line segment in canvas space.
type Segment struct {
	A, B transforms.CSPoint
}

// Circle is a circle in canvas space.
type Circle struct {
	Center transforms.CSPoint
	Radius float32
}

// Grid spacings in viewport units (before SnapScale), and the zoom levels at
// which each grid becomes visible.
const (
	coarseGridSpacing   = 16.0
	fineGridSpacing     = 2.0
	coarseGridThreshold = 2.0
	fineGridThreshold   = 6.0
)

// cursorMarkerSize is the edge length, in canvas pixels, of the square drawn
// at the snapped cursor position.
const cursorMarkerSize = 5.0

// GridLines returns the grid segments visible inside the canvas box csb. The
// coarse grid appears once sufficiently zoomed in, the fine grid on top of it
// at higher zoom still; zoomed further out the grid is omitted entirely.
func (v *Viewport) GridLines(csb transforms.CSBox) []Segment {
	snap := v.cfg.SnapScale
	var segs []Segment
	if v.vct.Scale() > coarseGridThreshold*snap {
		segs = append(segs, v.gridWithSpacing(coarseGridSpacing/snap, csb)...)
		if v.vct.Scale() > fineGridThreshold*snap {
			segs = append(segs, v.gridWithSpacing(fineGridSpacing/snap, csb)...)
		}
	}
	return segs
}

// gridWithSpacing emits vertical and horizontal lines at the given
// viewport-space spacing, covering the viewport region visible in csb.
func (v *Viewport) gridWithSpacing(spacing float32, csb transforms.CSBox) []Segment {
	vsb := v.vct.OuterViewportBox(csb)
	x0 := math32.Ceil(vsb.Min.X/spacing) * spacing
	y0 := math32.Ceil(vsb.Min.Y/spacing) * spacing

	var segs []Segment
	for x := x0; x <= vsb.Max.X; x += spacing {
		segs = append(segs, Segment{
			A: v.vct.ToCanvas(transforms.VSPoint{X: x, Y: vsb.Min.Y}),
			B: v.vct.ToCanvas(transforms.VSPoint{X: x, Y: vsb.Max.Y}),
		})
	}
	for y := y0; y <= vsb.Max.Y; y += spacing {
		segs = append(segs, Segment{
			A: v.vct.ToCanvas(transforms.VSPoint{X: vsb.Min.X, Y: y}),
			B: v.vct.ToCanvas(transforms.VSPoint{X: vsb.Max.X, Y: y}),
		})
	}
	return segs
}

// OriginMarker returns the cross and circle marking the viewport origin.
func (v *Viewport) OriginMarker() ([]Segment, Circle) {
	segs := []Segment{
		{
			A: v.vct.ToCanvas(transforms.VSPoint{X: 0, Y: 1}),
			B: v.vct.ToCanvas(transforms.VSPoint{X: 0, Y: -1}),
		},
		{
			A: v.vct.ToCanvas(transforms.VSPoint{X: 1, Y: 0}),
			B: v.vct.ToCanvas(transforms.VSPoint{X: -1, Y: 0}),
		},
	}
	c := Circle{
		Center: v.vct.ToCanvas(transforms.VSPoint{}),
		Radius: v.vct.Scale() * 0.5,
	}
	return segs, c
}

// CursorMarker returns the canvas-space square centered on the cursor's
// snapped schematic position.
func (v *Viewport) CursorMarker() transforms.CSBox {
	csp := v.vct.ToCanvas(v.cur.Schematic.ToVS())
	h := float32(cursorMarkerSize) / 2
	return transforms.CSBox{
		Min: transforms.CSPoint{X: csp.X - h, Y: csp.Y - h},
		Max: transforms.CSPoint{X: csp.X + h, Y: csp.Y + h},
	}
}

// Marquee returns the rubber-band corners in canvas space. ok is false
// outside NewView or while the drag is still inside the deadband.
func (v *Viewport) Marquee() (p0, p1 transforms.CSPoint, ok bool) {
	if v.state.Kind != StateNewView || v.state.P1 == v.state.P0 {
		return transforms.CSPoint{}, transforms.CSPoint{}, false
	}
	return v.vct.ToCanvas(v.state.P0), v.vct.ToCanvas(v.state.P1), true
}
