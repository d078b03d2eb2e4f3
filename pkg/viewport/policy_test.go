package viewport

import (
	"testing"

	"github.com/RonSheely/circe/pkg/transforms"
)

func TestUniformPolicyClampsDeterminant(t *testing.T) {
	p := UniformPolicy{Min: 1, Max: 100}

	cases := []struct {
		name  string
		scale float32
		k     float32
		want  float32
	}{
		{"within bounds", 10, 1.6, 16},
		{"request above max lands exactly on max", 80, 2, 100},
		{"request below min lands exactly on min", 2, 0.25, 1},
		{"factor zero lands exactly on min", 10, 0, 1},
		{"already at max stays at max", 100, 2, 100},
		{"already at min stays at min", 1, 0.5, 1},
	}
	for _, tc := range cases {
		vct := transforms.NewVCTransform(tc.scale, transforms.CSVec{})
		got := p.Rescale(vct, tc.k)
		nearF(t, got.Scale(), tc.want, tc.name)
		// Uniform means the axes never diverge.
		nearF(t, got.XScale(), got.YScale(), tc.name+" (axis symmetry)")
	}
}

func TestFreeAspectPolicyClampsAxesIndependently(t *testing.T) {
	p := FreeAspectPolicy{Min: 1, Max: 100}

	// 20 px/unit in x, 10 in y. A factor of 8 saturates x at the limit
	// while y still has headroom, so the aspect ratio changes.
	vct := transforms.NewVCTransform(10, transforms.CSVec{}).ThenScale(2, 1)
	got := p.Rescale(vct, 8)

	nearF(t, got.XScale(), 100, "x scale")
	nearF(t, got.YScale(), 80, "y scale")
}

func TestFreeAspectPolicyWithinBoundsIsUniform(t *testing.T) {
	p := FreeAspectPolicy{Min: 1, Max: 100}

	vct := transforms.NewVCTransform(10, transforms.CSVec{})
	got := p.Rescale(vct, 2)

	nearF(t, got.XScale(), 20, "x scale")
	nearF(t, got.YScale(), 20, "y scale")
}
