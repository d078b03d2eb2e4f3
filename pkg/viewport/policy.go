package viewport

import (
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/chewxy/math32"
)

// ScalePolicy decides how a relative zoom factor is applied to the committed
// transform, in particular how the configured zoom bounds are enforced. The
// returned transform is not yet recentered on the cursor; the viewport does
// that after clamping, which is what keeps the zoom anchored at the limits.
//
// Two policies exist because the editor has two viewport variants: the
// schematic view clamps the uniform determinant, the plot view clamps each
// axis independently and so may stretch. They are deliberately kept as
// distinct policies rather than unified.
type ScalePolicy interface {
	Rescale(t transforms.VCTransform, k float32) transforms.VCTransform
}

// UniformPolicy keeps x and y scale equal and clamps sqrt(|det|) to
// [Min, Max]. A requested zoom that would land outside the bounds is replaced
// by the factor reaching exactly the bound, so the committed transform is
// never degenerate even for a wheel factor of 0.
type UniformPolicy struct {
	Min, Max float32
}

func (p UniformPolicy) Rescale(t transforms.VCTransform, k float32) transforms.VCTransform {
	det := t.Det() * k * k
	switch {
	case det < p.Min*p.Min:
		f := p.Min / t.Scale()
		return t.ThenScale(f, f)
	case det <= p.Max*p.Max:
		return t.ThenScale(k, k)
	default:
		f := p.Max / t.Scale()
		return t.ThenScale(f, f)
	}
}

// FreeAspectPolicy clamps the x and y scale factors independently to
// [Min, Max], allowing non-uniform stretch once one axis hits a bound.
type FreeAspectPolicy struct {
	Min, Max float32
}

func (p FreeAspectPolicy) Rescale(t transforms.VCTransform, k float32) transforms.VCTransform {
	fx := clamp32(k*t.XScale(), p.Min, p.Max) / t.XScale()
	fy := clamp32(k*t.YScale(), p.Min, p.Max) / t.YScale()
	return t.ThenScale(fx, fy)
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
