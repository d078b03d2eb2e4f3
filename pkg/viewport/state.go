package viewport

import (
	"fmt"

	"github.com/RonSheely/circe/pkg/transforms"
)

// StateKind identifies which interaction the viewport is in the middle of.
type StateKind uint8

const (
	// StateIdle is the default state: cursor motion only updates the
	// tracked cursor position.
	StateIdle StateKind = iota
	// StatePanning follows the cursor with the view, anchored at the
	// canvas point where the middle button went down.
	StatePanning
	// StateNewView tracks a right-button rubber-band rectangle used to fit
	// the view to the selected region on release.
	StateNewView
)

var stateNames = map[StateKind]string{
	StateIdle:    "Idle",
	StatePanning: "Panning",
	StateNewView: "NewView",
}

func (k StateKind) String() string {
	if name, ok := stateNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StateKind(%d)", k)
}

// State is the interaction state together with the data the active
// interaction carries. Anchor is meaningful while Panning; P0 and P1 while in
// NewView.
type State struct {
	Kind   StateKind
	Anchor transforms.CSPoint
	P0, P1 transforms.VSPoint
}
