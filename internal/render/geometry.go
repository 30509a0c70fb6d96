// Package render draws scan results for humans: a PNG of the sensor field
// and an HTML chart of covered positions per row.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/banshee-data/beacon.report/internal/fsutil"
	"github.com/banshee-data/beacon.report/internal/geom"
	"github.com/banshee-data/beacon.report/internal/sensor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrEmptyScene is returned when a Scene has no sensors to draw.
var ErrEmptyScene = errors.New("render: scene has no sensors")

// Scene is everything drawn in a geometry plot. Gap and Row are optional.
type Scene struct {
	Sensors []sensor.Sensor
	Beacons []geom.Point
	Region  geom.Bounds
	Gap     *geom.Point
	Row     *int64
}

// GeometryPNG renders sc as a PNG written to path on fsys.
func GeometryPNG(fsys fsutil.FileSystem, path string, sc Scene) error {
	p, err := sc.plot()
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(10*vg.Inch, 10*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("encode geometry plot: %w", err)
	}

	w, err := fsutil.CreateOutput(fsys, path)
	if err != nil {
		return fmt.Errorf("create geometry plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		_ = w.Close()
		return fmt.Errorf("write geometry plot: %w", err)
	}
	return w.Close()
}

func (sc Scene) plot() (*plot.Plot, error) {
	if len(sc.Sensors) == 0 {
		return nil, ErrEmptyScene
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sensor exclusion zones (%d sensors)", len(sc.Sensors))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	centers := make(plotter.XYs, 0, len(sc.Sensors))
	var xs, ys []float64
	for i, s := range sc.Sensors {
		outline := diamond(s)
		line, err := plotter.NewLine(outline)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)

		centers = append(centers, plotter.XY{X: float64(s.Center.X), Y: float64(s.Center.Y)})
		for _, pt := range outline {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
		}
	}

	sensorPts, err := plotter.NewScatter(centers)
	if err != nil {
		return nil, err
	}
	sensorPts.GlyphStyle.Shape = draw.CrossGlyph{}
	sensorPts.GlyphStyle.Color = color.Black
	p.Add(sensorPts)
	p.Legend.Add("sensor", sensorPts)

	if len(sc.Beacons) > 0 {
		beaconPts, err := plotter.NewScatter(points(sc.Beacons))
		if err != nil {
			return nil, err
		}
		beaconPts.GlyphStyle.Shape = draw.BoxGlyph{}
		beaconPts.GlyphStyle.Color = color.RGBA{R: 30, G: 30, B: 200, A: 255}
		p.Add(beaconPts)
		p.Legend.Add("beacon", beaconPts)
	}

	if !sc.Region.Empty() {
		box, err := plotter.NewLine(regionOutline(sc.Region))
		if err != nil {
			return nil, err
		}
		box.Color = color.Gray{Y: 90}
		box.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(box)
		p.Legend.Add("region", box)
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	if sc.Row != nil {
		y := float64(*sc.Row)
		rowLine, err := plotter.NewLine(plotter.XYs{{X: minX, Y: y}, {X: maxX, Y: y}})
		if err != nil {
			return nil, err
		}
		rowLine.Color = color.RGBA{R: 200, G: 120, B: 0, A: 255}
		rowLine.Width = vg.Points(1.5)
		p.Add(rowLine)
		p.Legend.Add(fmt.Sprintf("row y=%d", *sc.Row), rowLine)
	}

	if sc.Gap != nil {
		gapPt, err := plotter.NewScatter(points([]geom.Point{*sc.Gap}))
		if err != nil {
			return nil, err
		}
		gapPt.GlyphStyle.Shape = draw.CircleGlyph{}
		gapPt.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
		gapPt.GlyphStyle.Radius = vg.Points(5)
		p.Add(gapPt)
		p.Legend.Add(fmt.Sprintf("gap %v", *sc.Gap), gapPt)
	}

	p.X.Min, p.X.Max = minX-1, maxX+1
	p.Y.Min, p.Y.Max = floats.Min(ys)-1, floats.Max(ys)+1
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// diamond returns the closed outline of a sensor's exclusion region.
func diamond(s sensor.Sensor) plotter.XYs {
	cx, cy, r := float64(s.Center.X), float64(s.Center.Y), float64(s.Radius)
	return plotter.XYs{
		{X: cx - r, Y: cy},
		{X: cx, Y: cy + r},
		{X: cx + r, Y: cy},
		{X: cx, Y: cy - r},
		{X: cx - r, Y: cy},
	}
}

// regionOutline traces the inclusive lattice extent of b.
func regionOutline(b geom.Bounds) plotter.XYs {
	x0, y0 := float64(b.Min.X), float64(b.Min.Y)
	x1, y1 := float64(b.Max.X-1), float64(b.Max.Y-1)
	return plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}}
}

func points(ps []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(ps))
	for i, p := range ps {
		xys[i] = plotter.XY{X: float64(p.X), Y: float64(p.Y)}
	}
	return xys
}
