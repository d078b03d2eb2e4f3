package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/RonSheely/circe/pkg/viewport"
)

var (
	colorBackground = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
	colorGrid       = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
	colorCursor     = color.NRGBA{R: 255, G: 230, B: 0, A: 255}
	colorDevice     = color.NRGBA{R: 80, G: 200, B: 120, A: 255}
	colorTentative  = color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	colorLabel      = color.NRGBA{R: 255, G: 128, B: 255, A: 255}
	colorMarqueeUp  = color.NRGBA{R: 0, G: 0, B: 255, A: 26}
	colorMarqueeDn  = color.NRGBA{R: 255, G: 0, B: 0, A: 26}
)

func strokeLine(ops *op.Ops, a, b transforms.CSPoint, width float32, col color.NRGBA) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(a.X, a.Y))
	p.LineTo(f32.Pt(b.X, b.Y))
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func strokeSegments(ops *op.Ops, segs []viewport.Segment, width float32, col color.NRGBA) {
	for _, s := range segs {
		strokeLine(ops, s.A, s.B, width, col)
	}
}

func strokeRect(ops *op.Ops, r transforms.CSBox, width float32, col color.NRGBA) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(r.Min.X, r.Min.Y))
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(f32.Pt(r.Max.X, r.Max.Y))
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.Close()
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func fillRect(ops *op.Ops, r transforms.CSBox, col color.NRGBA) {
	paint.FillShape(ops, col, clip.Rect{
		Min: image.Pt(int(r.Min.X), int(r.Min.Y)),
		Max: image.Pt(int(r.Max.X), int(r.Max.Y)),
	}.Op())
}

func strokeCircle(ops *op.Ops, c viewport.Circle, width float32, col color.NRGBA) {
	e := clip.Ellipse{
		Min: image.Pt(int(c.Center.X-c.Radius), int(c.Center.Y-c.Radius)),
		Max: image.Pt(int(c.Center.X+c.Radius), int(c.Center.Y+c.Radius)),
	}
	paint.FillShape(ops, col, clip.Stroke{Path: e.Path(ops), Width: width}.Op())
}
