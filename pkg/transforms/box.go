package transforms

import "github.com/chewxy/math32"

// CSBox is an axis-aligned rectangle in canvas space. Min is the top-left
// corner, Max the bottom-right (canvas y grows downward).
type CSBox struct {
	Min, Max CSPoint
}

// VSBox is an axis-aligned rectangle in viewport space. Min holds the smaller
// coordinates on both axes.
type VSBox struct {
	Min, Max VSPoint
}

// SSBox is an axis-aligned rectangle in schematic space.
type SSBox struct {
	Min, Max SSPoint
}

// CSBoxFromPoints returns the smallest box containing both points.
func CSBoxFromPoints(a, b CSPoint) CSBox {
	return CSBox{
		Min: CSPoint{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y)},
		Max: CSPoint{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y)},
	}
}

// VSBoxFromPoints returns the smallest box containing both points.
func VSBoxFromPoints(a, b VSPoint) VSBox {
	return VSBox{
		Min: VSPoint{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y)},
		Max: VSPoint{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y)},
	}
}

func (b CSBox) Width() float32  { return b.Max.X - b.Min.X }
func (b CSBox) Height() float32 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the box.
func (b CSBox) Center() CSPoint {
	return CSPoint{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether p lies inside the box, edges included.
func (b CSBox) Contains(p CSPoint) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b VSBox) Width() float32  { return b.Max.X - b.Min.X }
func (b VSBox) Height() float32 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the box.
func (b VSBox) Center() VSPoint {
	return VSPoint{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// IsEmpty reports whether the box has no area.
func (b VSBox) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Inflate grows the box by dx on the left and right and dy on the top and
// bottom.
func (b VSBox) Inflate(dx, dy float32) VSBox {
	return VSBox{
		Min: VSPoint{X: b.Min.X - dx, Y: b.Min.Y - dy},
		Max: VSPoint{X: b.Max.X + dx, Y: b.Max.Y + dy},
	}
}

// Union returns the smallest box containing both boxes.
func (b VSBox) Union(o VSBox) VSBox {
	return VSBox{
		Min: VSPoint{X: math32.Min(b.Min.X, o.Min.X), Y: math32.Min(b.Min.Y, o.Min.Y)},
		Max: VSPoint{X: math32.Max(b.Max.X, o.Max.X), Y: math32.Max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b VSBox) Contains(p VSPoint) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ToVS widens the box into viewport space.
func (b SSBox) ToVS() VSBox {
	return VSBox{Min: b.Min.ToVS(), Max: b.Max.ToVS()}
}

// Contains reports whether p lies inside the box, edges included.
func (b SSBox) Contains(p SSPoint) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Translate displaces the box by v.
func (b SSBox) Translate(v SSPoint) SSBox {
	return SSBox{
		Min: SSPoint{X: b.Min.X + v.X, Y: b.Min.Y + v.Y},
		Max: SSPoint{X: b.Max.X + v.X, Y: b.Max.Y + v.Y},
	}
}
