package chart

import (
	"bytes"
	"fmt"
	"image"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"NeonQuotes/internal/model"
)

// EChartsRenderer is the fallback strategy: a minimal interactive line chart
// with a transparent background and no image compositing.
type EChartsRenderer struct {
	// DateFormat labels the x axis ticks.
	DateFormat string
}

// NewEChartsRenderer creates the fallback renderer.
func NewEChartsRenderer() *EChartsRenderer {
	return &EChartsRenderer{DateFormat: "01/02/06"}
}

func (e *EChartsRenderer) Name() string { return "echarts" }

// Available always reports true; the fallback has no runtime dependency.
func (e *EChartsRenderer) Available() bool { return true }

// Render draws the closing price over time as an embeddable HTML snippet.
// The background image is ignored by design for this strategy.
func (e *EChartsRenderer) Render(hist []model.Bar, ticker string, _ image.Image) (*model.Chart, error) {
	dates := make([]string, len(hist))
	closes := make([]opts.LineData, len(hist))
	for i, b := range hist {
		dates[i] = b.Time.Format(timeLayout(e.DateFormat))
		closes[i] = opts.LineData{Value: b.Close}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           "100%",
			Height:          "320px",
			BackgroundColor: "rgba(0,0,0,0)",
		}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Stock Price", ticker)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(dates).AddSeries(ticker, closes)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, err
	}
	return &model.Chart{Format: "html", Data: buf.Bytes()}, nil
}

func timeLayout(format string) string {
	if format == "" {
		return "01/02/06"
	}
	return format
}
