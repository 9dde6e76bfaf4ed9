package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"runtime"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"NeonQuotes/internal/model"
)

// neon is the line color shared by both renderers.
var neon = color.RGBA{R: 0x00, G: 0xea, B: 0xff, A: 0xff}

// GlowRenderer is the primary strategy: a styled PNG line chart with a glow
// treatment and optional background-image compositing. Rendering depends on
// font rasterization being usable in the runtime; the probe runs once and a
// failure pins the chain to the fallback for the process lifetime.
type GlowRenderer struct {
	// DateFormat is the tick format for the time axis. The zero value picks
	// a platform default in NewGlowRenderer.
	DateFormat string

	probeOnce sync.Once
	probeOK   bool
}

// NewGlowRenderer creates the renderer with the date format convention of the
// host platform.
func NewGlowRenderer() *GlowRenderer {
	format := "1/2/06"
	if runtime.GOOS == "windows" {
		format = "01/02/06"
	}
	return &GlowRenderer{DateFormat: format}
}

func (g *GlowRenderer) Name() string { return "glow" }

// Available probes the rendering toolkit exactly once.
func (g *GlowRenderer) Available() bool {
	g.probeOnce.Do(func() {
		g.probeOK = probe() == nil
	})
	return g.probeOK
}

func probe() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe panic: %v", r)
		}
	}()
	p := plot.New()
	ln, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	p.Add(ln)
	wt, err := p.WriterTo(vg.Inch, vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(io.Discard)
	return err
}

// Render draws the closing price over time with glow echo strokes. A non-nil
// bg is stretched across the data extent behind the line.
func (g *GlowRenderer) Render(hist []model.Bar, ticker string, bg image.Image) (rendered *model.Chart, err error) {
	defer func() {
		if r := recover(); r != nil {
			rendered, err = nil, fmt.Errorf("render panic: %v", r)
		}
	}()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Stock Price", ticker)
	p.Title.TextStyle.Color = neon
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price ($)"
	p.X.Tick.Marker = plot.TimeTicks{Format: g.DateFormat}
	p.BackgroundColor = color.Transparent

	axisColor := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}
	p.X.LineStyle.Color = axisColor
	p.Y.LineStyle.Color = axisColor
	p.X.Tick.LineStyle.Color = axisColor
	p.Y.Tick.LineStyle.Color = axisColor
	p.X.Tick.Label.Color = axisColor
	p.Y.Tick.Label.Color = axisColor
	p.X.Label.TextStyle.Color = axisColor
	p.Y.Label.TextStyle.Color = axisColor

	if bg != nil {
		xmin, xmax, ymin, ymax := extent(hist)
		p.Add(plotter.NewImage(bg, xmin, ymin, xmax, ymax))
	}

	xys := make(plotter.XYs, len(hist))
	for i, b := range hist {
		xys[i].X = float64(b.Time.Unix())
		xys[i].Y = b.Close
	}

	// Glow: the same line restruck with widening, fading echoes.
	echoes := []struct {
		width vg.Length
		alpha uint8
	}{
		{vg.Points(8), 0x18},
		{vg.Points(5), 0x30},
		{vg.Points(3), 0x60},
	}
	for _, e := range echoes {
		echo, lerr := plotter.NewLine(xys)
		if lerr != nil {
			return nil, lerr
		}
		echo.LineStyle.Color = color.RGBA{R: neon.R, G: neon.G, B: neon.B, A: e.alpha}
		echo.LineStyle.Width = e.width
		p.Add(echo)
	}

	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Color = neon
	ln.LineStyle.Width = vg.Points(2)
	p.Add(ln)

	grid := plotter.NewGrid()
	gridColor := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	var buf bytes.Buffer
	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &model.Chart{Format: "png", Data: buf.Bytes()}, nil
}

func extent(hist []model.Bar) (xmin, xmax, ymin, ymax float64) {
	xmin = float64(hist[0].Time.Unix())
	xmax = float64(hist[len(hist)-1].Time.Unix())
	ymin, ymax = hist[0].Close, hist[0].Close
	for _, b := range hist {
		if b.Close < ymin {
			ymin = b.Close
		}
		if b.Close > ymax {
			ymax = b.Close
		}
	}
	return xmin, xmax, ymin, ymax
}
