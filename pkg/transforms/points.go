// Package transforms defines the three coordinate spaces the editor works in
// and the invertible transform between two of them.
//
// CanvasSpace is the UI canvas coordinate, in pixels, origin top-left, y-down.
// ViewportSpace is the schematic coordinate in float32, y-up.
// SchematicSpace is the schematic coordinate in integers, derived from
// ViewportSpace by rounding.
//
// Each space gets its own point/vector/box types so a coordinate in one space
// can never be passed where another space is expected. Crossing spaces is
// always an explicit call: VCTransform for Canvas<->Viewport, Round/ToVS for
// Viewport<->Schematic.
package transforms

import (
	"fmt"

	"gioui.org/f32"
	"github.com/chewxy/math32"
)

// CSPoint is a point in canvas space.
type CSPoint struct {
	X, Y float32
}

// VSPoint is a point in viewport space.
type VSPoint struct {
	X, Y float32
}

// SSPoint is a point in schematic space.
type SSPoint struct {
	X, Y int
}

// CSVec is a displacement in canvas space.
type CSVec struct {
	X, Y float32
}

// VSVec is a displacement in viewport space.
type VSVec struct {
	X, Y float32
}

func (p CSPoint) String() string { return fmt.Sprintf("cs(%g, %g)", p.X, p.Y) }
func (p VSPoint) String() string { return fmt.Sprintf("vs(%g, %g)", p.X, p.Y) }
func (p SSPoint) String() string { return fmt.Sprintf("ss(%d, %d)", p.X, p.Y) }

// Sub returns the displacement from q to p.
func (p CSPoint) Sub(q CSPoint) CSVec {
	return CSVec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add displaces the point by v.
func (p CSPoint) Add(v CSVec) CSPoint {
	return CSPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Dist returns the canvas-space distance between p and q.
func (p CSPoint) Dist(q CSPoint) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p CSPoint) toF32() f32.Point { return f32.Pt(p.X, p.Y) }

// Sub returns the displacement from q to p.
func (p VSPoint) Sub(q VSPoint) VSVec {
	return VSVec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add displaces the point by v.
func (p VSPoint) Add(v VSVec) VSPoint {
	return VSPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Round converts the point to schematic space by rounding each component to
// the nearest integer. The conversion is lossy.
func (p VSPoint) Round() SSPoint {
	return SSPoint{X: int(math32.Round(p.X)), Y: int(math32.Round(p.Y))}
}

func (p VSPoint) toF32() f32.Point { return f32.Pt(p.X, p.Y) }

// ToVS widens the point back into viewport space. Every schematic point is
// exactly representable, so Round(ToVS(s)) == s always holds.
func (p SSPoint) ToVS() VSPoint {
	return VSPoint{X: float32(p.X), Y: float32(p.Y)}
}

// Length returns the magnitude of the vector.
func (v CSVec) Length() float32 { return math32.Hypot(v.X, v.Y) }

// Neg returns the vector pointing the opposite way.
func (v CSVec) Neg() CSVec { return CSVec{X: -v.X, Y: -v.Y} }

// Length returns the magnitude of the vector.
func (v VSVec) Length() float32 { return math32.Hypot(v.X, v.Y) }

// Neg returns the vector pointing the opposite way.
func (v VSVec) Neg() VSVec { return VSVec{X: -v.X, Y: -v.Y} }
