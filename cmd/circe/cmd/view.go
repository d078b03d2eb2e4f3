package cmd

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/RonSheely/circe/internal/ui"
	"github.com/RonSheely/circe/pkg/schematic"
	"github.com/RonSheely/circe/pkg/transforms"
	"github.com/RonSheely/circe/pkg/viewport"
)

var (
	viewMinZoom    float32
	viewMaxZoom    float32
	viewInitZoom   float32
	viewSnapScale  float32
	viewFreeAspect bool
	viewWidth      int
	viewHeight     int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the schematic editor window",
	Long: `Open the editor window.

Controls:
  Scroll           zoom at cursor
  Middle-drag      pan
  Right-drag       fit view to the selected region (Esc cancels)
  F                fit view to content
  R / C            place resistor / capacitor at cursor
  Del / Backspace  delete device under cursor`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().Float32Var(&viewMinZoom, "min-zoom", 1.0, "most zoomed out, pixels per unit")
	viewCmd.Flags().Float32Var(&viewMaxZoom, "max-zoom", 100.0, "most zoomed in, pixels per unit")
	viewCmd.Flags().Float32Var(&viewInitZoom, "zoom", 10.0, "initial zoom, pixels per unit")
	viewCmd.Flags().Float32Var(&viewSnapScale, "snap-scale", 1.0, "grid display granularity scale")
	viewCmd.Flags().BoolVar(&viewFreeAspect, "free-aspect", false, "clamp x and y zoom independently")
	viewCmd.Flags().IntVar(&viewWidth, "width", 1200, "window width in dp")
	viewCmd.Flags().IntVar(&viewHeight, "height", 800, "window height in dp")
}

func runView(cmd *cobra.Command, args []string) error {
	if viewMinZoom <= 0 || viewMaxZoom < viewMinZoom {
		return fmt.Errorf("invalid zoom bounds [%g, %g]", viewMinZoom, viewMaxZoom)
	}

	cfg := viewport.Config{
		MinScale:     viewMinZoom,
		MaxScale:     viewMaxZoom,
		InitialScale: viewInitZoom,
		SnapScale:    viewSnapScale,
		FreeAspect:   viewFreeAspect,
	}

	sch := schematic.New()
	seedDemo(sch)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("circe"))
		w.Option(app.Size(unit.Dp(viewWidth), unit.Dp(viewHeight)))

		if err := ui.NewApp(w, cfg, sch).Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// seedDemo places a few devices so a fresh window has something to pan, zoom
// and fit against.
func seedDemo(sch *schematic.Schematic) {
	sch.Place(schematic.KindResistor, transforms.SSPoint{X: 0, Y: 0})
	sch.Place(schematic.KindResistor, transforms.SSPoint{X: 16, Y: 0})
	sch.Place(schematic.KindCapacitor, transforms.SSPoint{X: 8, Y: -12})
	if verbose {
		log.Printf("seeded %d demo devices", len(sch.Devices()))
	}
}
