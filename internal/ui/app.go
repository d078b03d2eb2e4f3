package ui

import (
	"fmt"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/RonSheely/circe/pkg/schematic"
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/RonSheely/circe/pkg/viewport"
)

// App is the editor window: a toolbar above the schematic canvas.
type App struct {
	window *app.Window
	theme  *material.Theme
	canvas *CanvasView
	sch    *schematic.Schematic

	fitBtn widget.Clickable
}

// NewApp builds the window contents around a viewport configuration and a
// pre-populated schematic.
func NewApp(w *app.Window, cfg viewport.Config, sch *schematic.Schematic) *App {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	vp := viewport.New(cfg, sch)
	return &App{
		window: w,
		theme:  theme,
		canvas: NewCanvasView(theme, vp, sch),
		sch:    sch,
	}
}

// Run drives the Gio frame loop until the window is destroyed.
func (a *App) Run() error {
	var ops op.Ops
	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.layout(gtx)
			e.Frame(gtx.Ops)
			// The transient layer follows the cursor, so keep frames
			// coming while the pointer interacts with the canvas.
			a.window.Invalidate()
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.canvas.Layout),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	vp := a.canvas.Viewport()

	if a.fitBtn.Clicked(gtx) {
		vsb := a.sch.Bounds()
		if !vsb.IsEmpty() {
			csb := transforms.CSBoxFromPoints(
				transforms.CSPoint{},
				transforms.CSPoint{X: float32(a.canvas.size.X), Y: float32(a.canvas.size.Y)},
			)
			vp.DisplayBounds(csb, vsb.Inflate(5, 5))
			a.canvas.passive.Invalidate()
		}
	}

	inset := layout.Inset{Top: 8, Bottom: 8, Left: 8, Right: 8}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := material.Button(a.theme, &a.fitBtn, "Fit (F)")
				return btn.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				cur := vp.Cursor()
				info := fmt.Sprintf("Cursor: (%d, %d) | Zoom: %.1fx | Devices: %d | %s",
					cur.Schematic.X, cur.Schematic.Y,
					vp.Transform().Scale(),
					len(a.sch.Devices()),
					vp.State().Kind)
				return material.Body1(a.theme, info).Layout(gtx)
			}),
		)
	})
}
