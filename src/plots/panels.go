package plots

import (
	"fmt"

	"github.com/AEPP294/jetson-stats/src/telemetry"
)

// Line binds a table column to its legend label.
type Line struct {
	Column string
	Label  string
}

// RangeFunc computes a panel's y-axis bounds from the dataset.
type RangeFunc func(ds *telemetry.Dataset) (min, max float64, err error)

// Panel describes one stacked chart. Render iterates these in order.
type Panel struct {
	Title  string
	YLabel string
	Series []Line
	YRange RangeFunc
	// YTicks are fixed tick values; nil picks ticks automatically.
	YTicks []float64
	// XLabel is set only on the bottom panel.
	XLabel string
}

var percentTicks = []float64{0, 25, 50, 75, 100}

// Panels returns the seven report panels, top to bottom.
func Panels() []Panel {
	return []Panel{
		{
			Title:  "Temperature(˚C) vs time",
			YLabel: "temp (˚C)",
			Series: []Line{
				{telemetry.ColTempAO, "AO"},
				{telemetry.ColTempAUX, "AUX"},
				{telemetry.ColTempCPU, "CPU"},
				{telemetry.ColTempGPU, "GPU"},
				{telemetry.ColTempThermal, "thermal"},
			},
			YRange: fixedRange(-1, 101),
			YTicks: percentTicks,
		},
		{
			Title:  "CPU-core(% used) vs time",
			YLabel: "CPU-core(% used)",
			Series: coreSeries(telemetry.CPUUtilColumns()),
			YRange: fixedRange(-1, 109),
			YTicks: percentTicks,
		},
		{
			Title:  "CPU-core freq vs time",
			YLabel: "CPU-freq(MHz)",
			Series: append(coreSeries(telemetry.CPUFreqColumns()),
				Line{telemetry.ColCPUMaxFreq, "cpu_max_freq"}),
			YRange: cpuFreqRange,
			YTicks: []float64{0, 500, 1000, 1500},
		},
		{
			Title:  "GPU (% used) vs time",
			YLabel: "GPU (% used)",
			Series: []Line{{telemetry.ColGPU, "GPU"}},
			YRange: fixedRange(-1, 109),
			YTicks: percentTicks,
		},
		{
			Title:  "GPU freq(MHz) vs time",
			YLabel: "GPU freq (MHz)",
			Series: []Line{
				{telemetry.ColGPUFreq, "GPU_FREQ"},
				{telemetry.ColGPUMaxFreq, "GPU_MAX_FREQ"},
			},
			YRange: gpuFreqRange,
		},
		{
			Title:  "Power(W) vs time",
			YLabel: "power (W)",
			Series: []Line{
				{telemetry.ColPowerCur, "power_curr_all"},
				{telemetry.ColPowerSoC, "power_curr_soc"},
				{telemetry.ColPowerCV, "power_curr_cpu_gpu_cv"},
			},
			YRange: powerRange,
			YTicks: []float64{0, 5, 10, 15},
		},
		{
			Title:  "HW Engine Freq(MHz) vs time",
			YLabel: "freq (MHz)",
			Series: []Line{
				{telemetry.ColNVENC, "NVENC"},
				{telemetry.ColNVDEC, "NVDEC"},
			},
			YRange: fixedRange(-50, 1050),
			YTicks: []float64{0, 250, 500, 750, 1000},
			XLabel: "time(s)",
		},
	}
}

func coreSeries(cols []string) []Line {
	out := make([]Line, len(cols))
	for i, c := range cols {
		out[i] = Line{Column: c, Label: fmt.Sprintf("core%d", i+1)}
	}
	return out
}

func fixedRange(min, max float64) RangeFunc {
	return func(*telemetry.Dataset) (float64, float64, error) { return min, max, nil }
}

func cpuFreqRange(ds *telemetry.Dataset) (float64, float64, error) {
	return 0, ds.CPUMaxFreqMHz + 100, nil
}

func gpuFreqRange(ds *telemetry.Dataset) (float64, float64, error) {
	return -1, ds.GPUMaxFreqMHz() + 100, nil
}

func powerRange(ds *telemetry.Dataset) (float64, float64, error) {
	w, err := ds.Model.MaxPowerWatts()
	if err != nil {
		return 0, 0, err
	}
	return -1, w + 1, nil
}
