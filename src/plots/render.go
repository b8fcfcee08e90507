// Package plots renders a derived telemetry dataset as one tall PNG figure:
// a title banner, seven stacked time-series panels sharing the x axis, and a
// caption strip.
package plots

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AEPP294/jetson-stats/src/logging"
	"github.com/AEPP294/jetson-stats/src/telemetry"
)

const (
	bannerHeight  = 56
	captionHeight = 20
	xTickCount    = 12
)

// Options control figure geometry and labels.
type Options struct {
	Width       int
	Height      int
	TitlePrefix string
	// Name is the input file name without directory or extension.
	Name string
}

// PanelHeight is the height of each of the stacked panels for the given options.
func (o Options) PanelHeight(panels int) int {
	if panels <= 0 {
		return 0
	}
	return (o.Height - bannerHeight - captionHeight) / panels
}

// Render draws every panel from Panels() and stacks them under the title banner.
func Render(ds *telemetry.Dataset, opts Options) (image.Image, error) {
	return RenderPanels(ds, Panels(), opts)
}

// RenderPanels draws the given panels in order into one figure.
func RenderPanels(ds *telemetry.Dataset, panels []Panel, opts Options) (image.Image, error) {
	if ds == nil || ds.Table == nil || ds.Table.Len() == 0 {
		return nil, telemetry.ErrEmptyTable
	}
	if len(panels) == 0 {
		return nil, errors.New("no panels to render")
	}
	x, err := ds.Table.Float(telemetry.ColSample)
	if err != nil {
		return nil, err
	}
	elapsed := x[len(x)-1]
	xMax := elapsed
	if len(x) == 1 {
		xMax += telemetry.SamplePeriod / 2
	}
	xTicks := niceTicks(0, xMax, xTickCount)

	panelH := opts.PanelHeight(len(panels))
	fig := image.NewRGBA(image.Rect(0, 0, opts.Width, bannerHeight+panelH*len(panels)+captionHeight))
	draw.Draw(fig, fig.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	banner, err := renderBanner(opts.Width, bannerHeight, opts.TitlePrefix+" "+opts.Name, ds.Model.String())
	if err != nil {
		return nil, err
	}
	draw.Draw(fig, banner.Bounds(), banner, image.Point{}, draw.Over)

	for i, p := range panels {
		start := time.Now()
		ch, err := buildChart(ds, p, x, xMax, xTicks, opts.Width, panelH, i == len(panels)-1)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %q", p.Title)
		}
		img, err := renderChart(ch)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %q", p.Title)
		}
		top := bannerHeight + i*panelH
		r := image.Rect(0, top, opts.Width, top+panelH)
		draw.Draw(fig, r, img, img.Bounds().Min, draw.Over)
		logging.TimeTrack(start, "panel "+p.Title)
	}

	drawCaption(fig, captionText(opts.Name, len(x), elapsed))
	return fig, nil
}

func buildChart(ds *telemetry.Dataset, p Panel, x []float64, xMax float64, xTicks []chart.Tick, width, height int, bottom bool) (chart.Chart, error) {
	yMin, yMax, err := p.YRange(ds)
	if err != nil {
		return chart.Chart{}, err
	}
	yTicks := niceTicks(yMin, yMax, 5)
	if p.YTicks != nil {
		yTicks = fixedTicks(p.YTicks, yMin, yMax)
	}

	series := make([]chart.Series, 0, len(p.Series))
	entries := make([]legendEntry, 0, len(p.Series))
	for i, s := range p.Series {
		ys, err := ds.Table.Float(s.Column)
		if err != nil {
			return chart.Chart{}, err
		}
		col := seriesColor(i)
		xs, ys := padSingle(x, ys)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.2},
		})
		entries = append(entries, legendEntry{Label: s.Label, Color: col})
	}

	axisStyle := chart.Style{FontSize: 7, FontColor: drawing.ColorBlack}
	xAxis := chart.XAxis{
		Name:           p.XLabel,
		NameStyle:      chart.Style{FontSize: 8},
		Style:          axisStyle,
		Range:          &chart.ContinuousRange{Min: 0, Max: xMax},
		Ticks:          xTicks,
		GridLines:      gridLines(xTicks),
		GridMajorStyle: gridStyle,
	}
	if !bottom {
		xAxis.Ticks = blankLabels(xTicks)
	}

	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: 8, FontColor: drawing.ColorBlack},
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 12, Right: 12, Bottom: 4}},
		XAxis:      xAxis,
		YAxis: chart.YAxis{
			Name:           p.YLabel,
			NameStyle:      chart.Style{FontSize: 7},
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          yTicks,
			GridLines:      gridLines(yTicks),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{upperRightLegend(entries)}
	return ch, nil
}

// padSingle repeats a lone sample half a period later; go-chart needs two
// points to stroke a line.
func padSingle(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + telemetry.SamplePeriod/2}, []float64{ys[0], ys[0]}
}

func renderChart(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render chart")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode chart")
	}
	return img, nil
}
