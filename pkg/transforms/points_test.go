package transforms

import "testing"

func TestRoundToSchematic(t *testing.T) {
	cases := []struct {
		in   VSPoint
		want SSPoint
	}{
		{VSPoint{X: 0.4, Y: 0.4}, SSPoint{X: 0, Y: 0}},
		{VSPoint{X: 0.6, Y: -0.6}, SSPoint{X: 1, Y: -1}},
		{VSPoint{X: -12.49, Y: 12.51}, SSPoint{X: -12, Y: 13}},
		{VSPoint{X: 100, Y: -100}, SSPoint{X: 100, Y: -100}},
	}
	for _, tc := range cases {
		if got := tc.in.Round(); got != tc.want {
			t.Fatalf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSchematicRoundTripIsExact(t *testing.T) {
	points := []SSPoint{
		{X: 0, Y: 0},
		{X: 1, Y: -1},
		{X: -32768, Y: 32767},
		{X: 12345, Y: -6789},
	}
	for _, s := range points {
		if got := s.ToVS().Round(); got != s {
			t.Fatalf("Round(ToVS(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestBoxFromPointsNormalizes(t *testing.T) {
	b := VSBoxFromPoints(VSPoint{X: 5, Y: -2}, VSPoint{X: -3, Y: 7})
	if b.Min.X != -3 || b.Min.Y != -2 || b.Max.X != 5 || b.Max.Y != 7 {
		t.Fatalf("VSBoxFromPoints = %+v", b)
	}
	if b.Width() != 8 || b.Height() != 9 {
		t.Fatalf("Width/Height = %g/%g, want 8/9", b.Width(), b.Height())
	}
}

func TestBoxInflateAndUnion(t *testing.T) {
	b := VSBoxFromPoints(VSPoint{}, VSPoint{X: 10, Y: 10}).Inflate(5, 5)
	if b.Min.X != -5 || b.Max.Y != 15 {
		t.Fatalf("Inflate = %+v", b)
	}

	u := VSBoxFromPoints(VSPoint{}, VSPoint{X: 1, Y: 1}).
		Union(VSBoxFromPoints(VSPoint{X: 4, Y: -3}, VSPoint{X: 6, Y: 2}))
	want := VSBox{Min: VSPoint{X: 0, Y: -3}, Max: VSPoint{X: 6, Y: 2}}
	if u != want {
		t.Fatalf("Union = %+v, want %+v", u, want)
	}
}

func TestCSPointDist(t *testing.T) {
	a := CSPoint{X: 1, Y: 2}
	b := CSPoint{X: 4, Y: 6}
	if got := a.Dist(b); got != 5 {
		t.Fatalf("Dist = %g, want 5", got)
	}
}
