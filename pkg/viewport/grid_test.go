package viewport

import (
	"testing"

	"gioui.org/io/pointer"
	"github.com/RonSheely/circe/pkg/transforms"
)

func viewportAtScale(t *testing.T, s float32) *Viewport {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InitialScale = s
	cfg.MaxScale = 1000
	return New(cfg, nil)
}

func TestGridLinesHiddenWhenZoomedOut(t *testing.T) {
	v := viewportAtScale(t, 1)
	if segs := v.GridLines(testBounds); len(segs) != 0 {
		t.Fatalf("got %d segments at scale 1, want none", len(segs))
	}
}

func TestGridLinesCoarseOnly(t *testing.T) {
	// Scale 4 shows the coarse grid only: 16-unit spacing is 64 px, so an
	// 800x600 canvas holds 13 vertical and 10 horizontal lines.
	v := viewportAtScale(t, 4)
	segs := v.GridLines(testBounds)
	if len(segs) != 23 {
		t.Fatalf("got %d segments at scale 4, want 23", len(segs))
	}
	// First vertical line sits on the viewport origin column.
	if s := segs[0]; !nearF32(s.A.X, 0) || !nearF32(s.B.X, 0) {
		t.Fatalf("first segment = %v..%v, want x = 0", s.A, s.B)
	}
}

func TestGridLinesCoarseAndFine(t *testing.T) {
	// Scale 10 adds the 2-unit fine grid: 41 vertical and 31 horizontal
	// fine lines on top of the 6+4 coarse ones.
	v := viewportAtScale(t, 10)
	segs := v.GridLines(testBounds)
	if len(segs) != 82 {
		t.Fatalf("got %d segments at scale 10, want 82", len(segs))
	}
}

func TestGridRespectsSnapScale(t *testing.T) {
	// Doubling SnapScale halves the grid spacing in viewport units and
	// doubles the zoom thresholds, so scale 4 no longer shows a grid.
	cfg := DefaultConfig()
	cfg.InitialScale = 4
	cfg.SnapScale = 2
	v := New(cfg, nil)
	if segs := v.GridLines(testBounds); len(segs) != 0 {
		t.Fatalf("got %d segments with snap 2 at scale 4, want none", len(segs))
	}
}

func TestOriginMarker(t *testing.T) {
	v := viewportAtScale(t, 10)
	segs, c := v.OriginMarker()
	if len(segs) != 2 {
		t.Fatalf("got %d cross segments, want 2", len(segs))
	}
	// Vertical arm of the cross spans one unit up and down.
	if !nearXY(segs[0].A, 0, -10) || !nearXY(segs[0].B, 0, 10) {
		t.Fatalf("vertical arm = %v..%v", segs[0].A, segs[0].B)
	}
	if !nearXY(c.Center, 0, 0) {
		t.Fatalf("circle center = %v, want origin", c.Center)
	}
	nearF(t, c.Radius, 5, "origin circle radius")
}

func TestCursorMarkerCentersOnSnappedPosition(t *testing.T) {
	v := viewportAtScale(t, 10)
	v.Event(move(), at(103, 97), testBounds)

	// Cursor snaps to schematic (10,-10), which is canvas (100,100); the
	// marker is a fixed 5 px square around it.
	b := v.CursorMarker()
	if !nearXY(b.Min, 97.5, 97.5) || !nearXY(b.Max, 102.5, 102.5) {
		t.Fatalf("cursor marker = %+v", b)
	}
}

func TestMarqueeCorners(t *testing.T) {
	v := viewportAtScale(t, 10)

	if _, _, ok := v.Marquee(); ok {
		t.Fatal("marquee reported while idle")
	}

	v.Event(move(), at(100, 100), testBounds)
	v.Event(press(pointer.ButtonSecondary), at(100, 100), testBounds)
	if _, _, ok := v.Marquee(); ok {
		t.Fatal("marquee reported before leaving the deadband")
	}

	v.Event(move(), at(150, 150), testBounds)
	p0, p1, ok := v.Marquee()
	if !ok {
		t.Fatal("marquee not reported after drag")
	}
	if !nearXY(p0, 100, 100) || !nearXY(p1, 150, 150) {
		t.Fatalf("marquee corners = %v, %v", p0, p1)
	}
}

func nearXY(p transforms.CSPoint, x, y float32) bool {
	return p.Dist(transforms.CSPoint{X: x, Y: y}) < 1e-2
}

func nearF32(a, b float32) bool {
	d := a - b
	return d < 1e-2 && d > -1e-2
}
