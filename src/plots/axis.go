package plots

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gridStyle = chart.Style{
	StrokeColor:     drawing.ColorFromHex("008000").WithAlpha(110),
	StrokeWidth:     0.5,
	StrokeDashArray: []float64{3.0, 3.0},
}

// fixedTicks turns tick values into labeled ticks, keeping only those inside
// [min, max]. A bound past the last tick leaves unlabeled headroom.
func fixedTicks(values []float64, min, max float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(values))
	for _, v := range values {
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// niceTicks generates up to n desired tick marks between [min, max] using nice
// increments; ticks outside the range are dropped.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Ceil(min/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= max+bestStep*1e-9; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// blankLabels keeps tick positions (and so grid lines) but drops the text.
func blankLabels(ticks []chart.Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value}
	}
	return out
}

func gridLines(ticks []chart.Tick) []chart.GridLine {
	lines := make([]chart.GridLine, len(ticks))
	for i, t := range ticks {
		lines[i] = chart.GridLine{Value: t.Value, Style: gridStyle}
	}
	return lines
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100 || v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
