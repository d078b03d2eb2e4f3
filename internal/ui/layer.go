package ui

import (
	"gioui.org/layout"
	"gioui.org/op"
)

// Layer is a cached list of draw operations. The recorded ops are replayed
// every frame until Invalidate is called, so layers that rarely change (the
// grid, the placed devices) are not re-tessellated on every cursor move.
//
// The viewport engine decides when a layer is stale; this type only does the
// recording.
type Layer struct {
	ops   op.Ops
	call  op.CallOp
	valid bool
}

// Invalidate discards the recording so the next Add re-records.
func (l *Layer) Invalidate() {
	l.valid = false
}

// Add replays the cached ops into the frame, re-recording through draw first
// if the cache is stale.
func (l *Layer) Add(gtx layout.Context, draw func(gtx layout.Context)) {
	if !l.valid {
		l.ops.Reset()
		rec := gtx
		rec.Ops = &l.ops
		macro := op.Record(&l.ops)
		draw(rec)
		l.call = macro.Stop()
		l.valid = true
	}
	l.call.Add(gtx.Ops)
}
