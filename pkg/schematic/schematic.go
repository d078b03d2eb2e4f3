package schematic

import (
	"gioui.org/io/event"
	"gioui.org/io/key"
	"github.com/RonSheely/circe/pkg/transforms"
)

// Schematic is the collection of placed devices. It implements the
// viewport.Content contract: Bounds for fit-to-content and HandleEvent for
// the residual input events.
type Schematic struct {
	devices []*Device
	ordinal map[string]int
}

// New returns an empty schematic.
func New() *Schematic {
	return &Schematic{ordinal: make(map[string]int)}
}

// Devices returns the placed devices in placement order.
func (s *Schematic) Devices() []*Device { return s.devices }

// Place adds a device of the given kind at ssp and returns it. Designators
// are assigned per prefix in placement order.
func (s *Schematic) Place(k Kind, ssp transforms.SSPoint) *Device {
	s.ordinal[k.Prefix]++
	d := &Device{
		Designator: k.designator(s.ordinal[k.Prefix]),
		Position:   ssp,
		half:       k.Half,
	}
	s.devices = append(s.devices, d)
	return d
}

// DeviceAt returns the first device whose bounds contain ssp, or nil.
func (s *Schematic) DeviceAt(ssp transforms.SSPoint) *Device {
	for _, d := range s.devices {
		if d.Bounds().Contains(ssp) {
			return d
		}
	}
	return nil
}

// DeleteAt removes the device under ssp and reports whether one was removed.
func (s *Schematic) DeleteAt(ssp transforms.SSPoint) bool {
	for i, d := range s.devices {
		if d.Bounds().Contains(ssp) {
			s.devices = append(s.devices[:i], s.devices[i+1:]...)
			return true
		}
	}
	return false
}

// SetTentative highlights the device under ssp and clears all others.
func (s *Schematic) SetTentative(ssp transforms.SSPoint) {
	for _, d := range s.devices {
		d.Tentative = d.Bounds().Contains(ssp)
	}
}

// ClearTentatives clears every hover highlight.
func (s *Schematic) ClearTentatives() {
	for _, d := range s.devices {
		d.Tentative = false
	}
}

// Bounds returns the union of all device bounds in viewport space. An empty
// schematic reports an empty box.
func (s *Schematic) Bounds() transforms.VSBox {
	var vsb transforms.VSBox
	for i, d := range s.devices {
		if i == 0 {
			vsb = d.Bounds().ToVS()
			continue
		}
		vsb = vsb.Union(d.Bounds().ToVS())
	}
	return vsb
}

// HandleEvent processes an input event the viewport forwarded. pos is the
// cursor in viewport space, nil when the pointer is outside the canvas. It
// reports whether the persistent content changed.
func (s *Schematic) HandleEvent(ev event.Event, pos *transforms.VSPoint) bool {
	if pos == nil {
		s.ClearTentatives()
		return false
	}
	ssp := pos.Round()

	ke, ok := ev.(key.Event)
	if !ok {
		// Hover tracking follows every pointer event. The highlight is
		// drawn on the transient layer, so this never invalidates the
		// persistent one.
		s.SetTentative(ssp)
		return false
	}
	if ke.State != key.Press {
		return false
	}
	switch ke.Name {
	case "R":
		s.Place(KindResistor, ssp)
		return true
	case "C":
		s.Place(KindCapacitor, ssp)
		return true
	case key.NameDeleteForward, key.NameDeleteBackward:
		return s.DeleteAt(ssp)
	}
	return false
}
