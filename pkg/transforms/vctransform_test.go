package transforms

import (
	"testing"

	"github.com/chewxy/math32"
)

const tol = 1e-3

func nearF(a, b float32) bool {
	return math32.Abs(a-b) < tol
}

func nearCS(a, b CSPoint) bool { return nearF(a.X, b.X) && nearF(a.Y, b.Y) }
func nearVS(a, b VSPoint) bool { return nearF(a.X, b.X) && nearF(a.Y, b.Y) }

func TestNewVCTransformScaleAndFlip(t *testing.T) {
	vct := NewVCTransform(10, CSVec{})

	if got := vct.Scale(); !nearF(got, 10) {
		t.Fatalf("Scale() = %g, want 10", got)
	}
	// Viewport is y-up, canvas y-down: +y in viewport maps to -y in canvas.
	got := vct.ToCanvas(VSPoint{X: 1, Y: 1})
	if want := (CSPoint{X: 10, Y: -10}); !nearCS(got, want) {
		t.Fatalf("ToCanvas(1,1) = %v, want %v", got, want)
	}
}

func TestInvertibilityRoundTrip(t *testing.T) {
	vct := NewVCTransform(7.5, CSVec{X: 123, Y: -45}).
		ThenScale(1.5, 1.5).
		PreTranslate(VSVec{X: 3, Y: -8})

	points := []VSPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: -17.25, Y: 42.5},
		{X: 1000, Y: -1000},
	}
	for _, p := range points {
		if got := vct.ToViewport(vct.ToCanvas(p)); !nearVS(got, p) {
			t.Fatalf("ToViewport(ToCanvas(%v)) = %v", p, got)
		}
	}
	canvasPoints := []CSPoint{
		{X: 0, Y: 0},
		{X: 400, Y: 300},
		{X: -3.5, Y: 799.5},
	}
	for _, q := range canvasPoints {
		if got := vct.ToCanvas(vct.ToViewport(q)); !nearCS(got, q) {
			t.Fatalf("ToCanvas(ToViewport(%v)) = %v", q, got)
		}
	}
}

func TestVectorTransformIgnoresTranslation(t *testing.T) {
	vct := NewVCTransform(2, CSVec{X: 500, Y: 500})

	got := vct.ToCanvasVec(VSVec{X: 3, Y: 4})
	if want := (CSVec{X: 6, Y: -8}); !nearF(got.X, want.X) || !nearF(got.Y, want.Y) {
		t.Fatalf("ToCanvasVec = %v, want %v", got, want)
	}
	back := vct.ToViewportVec(CSVec{X: 6, Y: -8})
	if want := (VSVec{X: 3, Y: 4}); !nearF(back.X, want.X) || !nearF(back.Y, want.Y) {
		t.Fatalf("ToViewportVec = %v, want %v", back, want)
	}
}

func TestFitBounds(t *testing.T) {
	csb := CSBoxFromPoints(CSPoint{}, CSPoint{X: 800, Y: 600})
	vsb := VSBoxFromPoints(VSPoint{}, VSPoint{X: 40, Y: 30})

	vct := FitBounds(csb, vsb, 1, 100)

	if got := vct.Scale(); !nearF(got, 20) {
		t.Fatalf("Scale() = %g, want 20", got)
	}
	center := vct.ToCanvas(VSPoint{X: 20, Y: 15})
	if want := (CSPoint{X: 400, Y: 300}); !nearCS(center, want) {
		t.Fatalf("viewport center maps to %v, want %v", center, want)
	}
}

func TestFitBoundsClamped(t *testing.T) {
	csb := CSBoxFromPoints(CSPoint{}, CSPoint{X: 800, Y: 600})

	cases := []struct {
		name string
		vsb  VSBox
		want float32
	}{
		{"tiny region clamps to max", VSBoxFromPoints(VSPoint{}, VSPoint{X: 0.1, Y: 0.1}), 100},
		{"huge region clamps to min", VSBoxFromPoints(VSPoint{}, VSPoint{X: 1e5, Y: 1e5}), 1},
	}
	for _, tc := range cases {
		vct := FitBounds(csb, tc.vsb, 1, 100)
		if got := vct.Scale(); !nearF(got, tc.want) {
			t.Fatalf("%s: Scale() = %g, want %g", tc.name, got, tc.want)
		}
		// Centers still coincide after clamping.
		center := vct.ToCanvas(tc.vsb.Center())
		if want := csb.Center(); !nearCS(center, want) {
			t.Fatalf("%s: center maps to %v, want %v", tc.name, center, want)
		}
	}
}

func TestPreTranslatePansInViewportUnits(t *testing.T) {
	vct := NewVCTransform(10, CSVec{})
	moved := vct.PreTranslate(VSVec{X: 2, Y: 3})

	// The viewport origin shifts by (2,3) units, i.e. (20,-30) pixels.
	got := moved.ToCanvas(VSPoint{})
	if want := (CSPoint{X: 20, Y: -30}); !nearCS(got, want) {
		t.Fatalf("origin after pan = %v, want %v", got, want)
	}
	if !nearF(moved.Scale(), vct.Scale()) {
		t.Fatalf("pan changed scale: %g -> %g", vct.Scale(), moved.Scale())
	}
}

func TestDegenerateTransformPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero-scale transform")
		}
	}()
	NewVCTransform(0, CSVec{})
}
