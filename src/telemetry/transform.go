package telemetry

import (
	"math"

	"github.com/pkg/errors"

	"github.com/AEPP294/jetson-stats/src/logging"
)

// Dataset is a derived table plus the row-0 values the charts scale against.
type Dataset struct {
	Table *Table
	Model PowerModel

	// CPUMaxFreqMHz is CPU6max_freq of the first sample, after conversion.
	CPUMaxFreqMHz float64
	// GPUMaxFreqRaw is GPU_MAX_FREQ of the first sample as logged, in Hz.
	GPUMaxFreqRaw float64
}

// GPUMaxFreqMHz returns the retained GPU maximum frequency in chart units.
func (d *Dataset) GPUMaxFreqMHz() float64 { return d.GPUMaxFreqRaw / hzPerMHz }

const (
	khzPerMHz = 1000
	hzPerMHz  = 1_000_000
	mwPerW    = 1000
)

// Derive turns an ingested table into a Dataset. The table is modified in place.
func Derive(t *Table) (*Dataset, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if err := AddSampleColumn(t); err != nil {
		return nil, err
	}
	if err := AddLogFrequencies(t); err != nil {
		return nil, err
	}

	models, err := t.Text(ColNVPModel)
	if err != nil {
		return nil, err
	}
	model, err := ParsePowerModel(models[0])
	if err != nil {
		return nil, err
	}
	logging.Debugf("nvp model: mode=%s max_power=%s cores=%s", model.Mode, model.MaxPower, model.Cores)

	gpuMax, err := t.Float(ColGPUMaxFreq)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Table: t, Model: model, GPUMaxFreqRaw: gpuMax[0]}

	if err := ConvertUnits(t); err != nil {
		return nil, err
	}
	if err := ReplaceSentinel(t); err != nil {
		return nil, err
	}
	for _, col := range numericSourceColumns() {
		if _, err := t.Float(col); err != nil {
			return nil, err
		}
	}
	if dropped := DropUnplotted(t); len(dropped) > 0 {
		logging.Debugf("dropped unplotted columns: %v", dropped)
	}

	cpuMax, err := t.Float(ColCPUMaxFreq)
	if err != nil {
		return nil, err
	}
	ds.CPUMaxFreqMHz = cpuMax[0]
	return ds, nil
}

// AddSampleColumn adds the elapsed-time column: row i is (i+1) * SamplePeriod seconds.
func AddSampleColumn(t *Table) error {
	samples := make([]float64, t.Len())
	for i := range samples {
		samples[i] = float64(i+1) * SamplePeriod
	}
	return t.SetFloat(ColSample, samples)
}

// AddLogFrequencies adds log2 copies of the raw GPU frequency columns.
// Must run before ConvertUnits.
func AddLogFrequencies(t *Table) error {
	pairs := [][2]string{
		{ColGPUFreq, ColLogGPUFreq},
		{ColGPUMaxFreq, ColLogGPUMaxFreq},
	}
	for _, p := range pairs {
		src, err := t.Float(p[0])
		if err != nil {
			return err
		}
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = math.Log2(v)
		}
		if err := t.SetFloat(p[1], out); err != nil {
			return err
		}
	}
	return nil
}

// ConvertUnits rescales frequency columns to MHz and power columns to W.
// Not idempotent: run it exactly once per table.
func ConvertUnits(t *Table) error {
	for _, col := range khzColumns() {
		if err := divideColumn(t, col, khzPerMHz); err != nil {
			return err
		}
	}
	if err := divideColumn(t, ColGPUMaxFreq, hzPerMHz); err != nil {
		return err
	}
	for _, col := range powerColumns {
		if err := divideColumn(t, col, mwPerW); err != nil {
			return err
		}
	}
	return nil
}

func divideColumn(t *Table, name string, divisor float64) error {
	values, err := t.Float(name)
	if err != nil {
		return errors.Wrap(err, "unit conversion")
	}
	for i := range values {
		values[i] /= divisor
	}
	return nil
}

// ReplaceSentinel maps the idle marker OFF to 0 in the encoder and decoder
// columns. Numeric cells are never changed, so repeated calls are harmless.
func ReplaceSentinel(t *Table) error {
	for _, col := range engineColumns {
		n, err := t.Replace(col, EngineOff, "0")
		if err != nil {
			return err
		}
		if n > 0 {
			logging.Debugf("%s: %d idle samples mapped to 0", col, n)
		}
	}
	return nil
}

// DropUnplotted removes the logged-but-never-charted columns that are present.
func DropUnplotted(t *Table) []string {
	return t.Drop(unplottedColumns...)
}
