// Package schematic holds the device instances displayed through the
// viewport. It is the content collaborator: the viewport engine decides where
// things are and when to redraw, this package decides what exists and
// consumes the residual events the viewport did not claim.
package schematic

import (
	"fmt"

	"github.com/RonSheely/circe/pkg/transforms"
)

// Device is a placed component instance. Position and bounds live in
// schematic space so the device always sits on the snap grid.
type Device struct {
	// Designator is the unique reference printed next to the symbol, e.g.
	// R1 or C3.
	Designator string
	// Position is the placement point on the schematic grid.
	Position transforms.SSPoint
	// Tentative marks the device under the cursor, drawn highlighted on
	// the transient layer.
	Tentative bool

	half transforms.SSPoint // half extents of the body
}

// Bounds returns the device body box in schematic space.
func (d *Device) Bounds() transforms.SSBox {
	return transforms.SSBox{
		Min: transforms.SSPoint{X: d.Position.X - d.half.X, Y: d.Position.Y - d.half.Y},
		Max: transforms.SSPoint{X: d.Position.X + d.half.X, Y: d.Position.Y + d.half.Y},
	}
}

// Kind describes a placeable device type.
type Kind struct {
	// Prefix determines the designator series, R for resistors and so on.
	Prefix string
	// Half is the body half extent in schematic units.
	Half transforms.SSPoint
}

var (
	KindResistor  = Kind{Prefix: "R", Half: transforms.SSPoint{X: 1, Y: 3}}
	KindCapacitor = Kind{Prefix: "C", Half: transforms.SSPoint{X: 2, Y: 2}}
)

func (k Kind) designator(ord int) string {
	return fmt.Sprintf("%s%d", k.Prefix, ord)
}
