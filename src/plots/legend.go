package plots

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// palette is matplotlib's default color cycle.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
}

func seriesColor(i int) drawing.Color { return palette[i%len(palette)] }

type legendEntry struct {
	Label string
	Color drawing.Color
}

const (
	legendFontSize = 6.5
	legendMargin   = 6
	legendPad      = 4
	legendSwatch   = 14
	legendGap      = 2
)

// upperRightLegend draws a compact legend box in the top-right corner of the
// plot area; go-chart's built-in legends anchor left.
func upperRightLegend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		style := chart.Style{
			FillColor:   drawing.ColorWhite.WithAlpha(220),
			StrokeColor: drawing.ColorFromHex("c8c8c8"),
			StrokeWidth: 0.8,
			FontSize:    legendFontSize,
			FontColor:   drawing.ColorBlack,
		}.InheritFrom(defaults)

		r.SetFont(style.GetFont())
		r.SetFontSize(style.GetFontSize())
		r.SetFontColor(style.GetFontColor())

		textW, textH := 0, 0
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			if w := tb.Width(); w > textW {
				textW = w
			}
			if h := tb.Height(); h > textH {
				textH = h
			}
		}

		boxW := legendPad + legendSwatch + legendPad + textW + legendPad
		boxH := legendPad + len(entries)*(textH+legendGap) - legendGap + legendPad
		box := chart.Box{
			Top:    canvasBox.Top + legendMargin,
			Right:  canvasBox.Right - legendMargin,
			Left:   canvasBox.Right - legendMargin - boxW,
			Bottom: canvasBox.Top + legendMargin + boxH,
		}
		chart.Draw.Box(r, box, style)

		y := box.Top + legendPad
		for _, e := range entries {
			mid := y + textH/2
			r.SetStrokeColor(e.Color)
			r.SetStrokeWidth(2)
			r.SetStrokeDashArray(nil)
			r.MoveTo(box.Left+legendPad, mid)
			r.LineTo(box.Left+legendPad+legendSwatch, mid)
			r.Stroke()

			r.SetFont(style.GetFont())
			r.SetFontSize(style.GetFontSize())
			r.SetFontColor(style.GetFontColor())
			r.Text(e.Label, box.Left+legendPad+legendSwatch+legendPad, y+textH)
			y += textH + legendGap
		}
	}
}
