package transforms

import (
	"fmt"

	"gioui.org/f32"
	"github.com/chewxy/math32"
)

// degenerateDet is the smallest determinant magnitude accepted when a
// transform is committed. The zoom clamp keeps committed transforms well
// above this; reaching it means a caller bypassed the clamp.
const degenerateDet = 1e-12

// VCTransform is the viewport-to-canvas affine map together with its cached
// inverse and cached per-axis scale factors. The inverse and scales are
// stored because they are read on every draw and cursor update.
//
// A VCTransform is an immutable value; the composition methods return new
// values. Construction goes through NewVCTransform or FitBounds, and every
// construction path verifies the map is invertible, so ToViewport never
// fails.
//
// The map is always a scale (y-flipping, since viewport space is y-up and
// canvas space is y-down) followed by a translation; there is no rotation or
// shear component.
type VCTransform struct {
	vc     f32.Affine2D // viewport -> canvas
	cv     f32.Affine2D // cached inverse, canvas -> viewport
	xs, ys float32      // cached axis scale magnitudes
	scale  float32      // cached sqrt(|det|)
}

// NewVCTransform builds a transform with uniform scale s (y-flipped) and the
// given canvas-space translation.
func NewVCTransform(s float32, offset CSVec) VCTransform {
	aff := f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(s, -s)).
		Offset(f32.Pt(offset.X, offset.Y))
	return fromAffine(aff)
}

// FitBounds returns the transform that makes vsb visible inside csb: uniform
// scale min(csb.h/vsb.h, csb.w/vsb.w) clamped to [minScale, maxScale],
// y-flipped, translated so the centers coincide. This is the single source of
// truth for fitting a region on screen.
func FitBounds(csb CSBox, vsb VSBox, minScale, maxScale float32) VCTransform {
	s := math32.Min(csb.Height()/vsb.Height(), csb.Width()/vsb.Width())
	s = clamp(s, minScale, maxScale)

	aff := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(s, -s))
	// Vector from the scaled viewport center to the canvas center.
	c := aff.Transform(vsb.Center().toF32())
	v := csb.Center().toF32().Sub(c)
	return fromAffine(aff.Offset(v))
}

// fromAffine caches the inverse and scale factors. It panics on a degenerate
// map: the zoom/pan algorithms clamp before committing, so this is an
// invariant violation, not a runtime error path.
func fromAffine(aff f32.Affine2D) VCTransform {
	sx, hx, _, hy, sy, _ := aff.Elems()
	det := sx*sy - hx*hy
	if math32.Abs(det) < degenerateDet {
		panic(fmt.Sprintf("transforms: degenerate viewport transform, det=%g", det))
	}
	return VCTransform{
		vc:    aff,
		cv:    aff.Invert(),
		xs:    math32.Abs(sx),
		ys:    math32.Abs(sy),
		scale: math32.Sqrt(math32.Abs(det)),
	}
}

// ToCanvas maps a viewport point to canvas space.
func (t VCTransform) ToCanvas(p VSPoint) CSPoint {
	q := t.vc.Transform(p.toF32())
	return CSPoint{X: q.X, Y: q.Y}
}

// ToViewport maps a canvas point to viewport space.
func (t VCTransform) ToViewport(p CSPoint) VSPoint {
	q := t.cv.Transform(p.toF32())
	return VSPoint{X: q.X, Y: q.Y}
}

// ToViewportVec maps a canvas displacement to viewport space, ignoring the
// translation component.
func (t VCTransform) ToViewportVec(v CSVec) VSVec {
	o := t.cv.Transform(f32.Point{})
	q := t.cv.Transform(f32.Pt(v.X, v.Y)).Sub(o)
	return VSVec{X: q.X, Y: q.Y}
}

// ToCanvasVec maps a viewport displacement to canvas space, ignoring the
// translation component.
func (t VCTransform) ToCanvasVec(v VSVec) CSVec {
	o := t.vc.Transform(f32.Point{})
	q := t.vc.Transform(f32.Pt(v.X, v.Y)).Sub(o)
	return CSVec{X: q.X, Y: q.Y}
}

// OuterViewportBox returns the viewport-space box covering csb.
func (t VCTransform) OuterViewportBox(csb CSBox) VSBox {
	return VSBoxFromPoints(t.ToViewport(csb.Min), t.ToViewport(csb.Max))
}

// Scale returns sqrt of the absolute determinant, the uniform zoom factor.
func (t VCTransform) Scale() float32 { return t.scale }

// XScale returns the x-axis scale magnitude.
func (t VCTransform) XScale() float32 { return t.xs }

// YScale returns the y-axis scale magnitude.
func (t VCTransform) YScale() float32 { return t.ys }

// Det returns the absolute determinant of the viewport-to-canvas map.
func (t VCTransform) Det() float32 {
	sx, hx, _, hy, sy, _ := t.vc.Elems()
	return math32.Abs(sx*sy - hx*hy)
}

// ThenScale applies a scale after the current map.
func (t VCTransform) ThenScale(sx, sy float32) VCTransform {
	return fromAffine(t.vc.Scale(f32.Point{}, f32.Pt(sx, sy)))
}

// ThenTranslate applies a canvas-space translation after the current map.
func (t VCTransform) ThenTranslate(v CSVec) VCTransform {
	return fromAffine(t.vc.Offset(f32.Pt(v.X, v.Y)))
}

// PreTranslate applies a viewport-space translation before the current map.
func (t VCTransform) PreTranslate(v VSVec) VCTransform {
	pre := f32.Affine2D{}.Offset(f32.Pt(v.X, v.Y))
	return fromAffine(t.vc.Mul(pre))
}

// Affine returns the viewport-to-canvas map in Gio form, for handing to the
// rendering layer.
func (t VCTransform) Affine() f32.Affine2D { return t.vc }

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
