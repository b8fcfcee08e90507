package telemetry_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AEPP294/jetson-stats/src/telemetry"
	"github.com/AEPP294/jetson-stats/src/telemetry/telemetrytest"
)

func loadFixture(t *testing.T, b *telemetrytest.Builder) *telemetry.Table {
	t.Helper()
	tbl, err := telemetry.ReadCSV(strings.NewReader(b.String()), telemetry.RequiredColumns())
	require.NoError(t, err)
	return tbl
}

func rawFloat(t *testing.T, b *telemetrytest.Builder, col string, i int) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(b.Value(col, i), 64)
	require.NoError(t, err)
	return v
}

func TestAddSampleColumn(t *testing.T) {
	for _, n := range []int{1, 2, 7, 120} {
		tbl := loadFixture(t, telemetrytest.NewBuilder("MODE_15W_6CORE", n))
		require.NoError(t, telemetry.AddSampleColumn(tbl))

		samples, err := tbl.Float(telemetry.ColSample)
		require.NoError(t, err)
		require.Len(t, samples, n)
		for i, s := range samples {
			assert.Equal(t, float64(i+1)*0.5, s)
			if i > 0 {
				assert.Greater(t, s, samples[i-1])
			}
		}
	}
}

func TestDerive_UnitConversionsAreExact(t *testing.T) {
	b := telemetrytest.NewBuilder("MODE_15W_6CORE", 5)
	tbl := loadFixture(t, b)

	ds, err := telemetry.Derive(tbl)
	require.NoError(t, err)

	checks := map[string]float64{
		"CPU1freq": 1000, "CPU2freq": 1000, "CPU3freq": 1000,
		"CPU4freq": 1000, "CPU5freq": 1000, "CPU6freq": 1000,
		telemetry.ColCPUMaxFreq: 1000,
		telemetry.ColGPUFreq:    1000,
		telemetry.ColGPUMaxFreq: 1_000_000,
		telemetry.ColPowerCur:   1000,
		telemetry.ColPowerSoC:   1000,
		telemetry.ColPowerCV:    1000,
	}
	for col, divisor := range checks {
		got, err := ds.Table.Float(col)
		require.NoError(t, err, col)
		for i := range got {
			assert.Equal(t, rawFloat(t, b, col, i)/divisor, got[i], "%s row %d", col, i)
		}
	}

	// Untouched columns keep their raw values.
	temps, err := ds.Table.Float(telemetry.ColTempGPU)
	require.NoError(t, err)
	assert.Equal(t, rawFloat(t, b, telemetry.ColTempGPU, 3), temps[3])
}

func TestDerive_RetainsRowZeroValues(t *testing.T) {
	ds, err := telemetry.Derive(loadFixture(t, telemetrytest.NewBuilder("MAXN:15W_6CORE", 3)))
	require.NoError(t, err)

	assert.Equal(t, telemetry.PowerModel{Mode: "MAXN", MaxPower: "15W", Cores: "6CORE"}, ds.Model)
	assert.Equal(t, 1420.8, ds.CPUMaxFreqMHz)
	assert.Equal(t, 1109250000.0, ds.GPUMaxFreqRaw)
	assert.Equal(t, 1109.25, ds.GPUMaxFreqMHz())
}

func TestDerive_LogFrequenciesUseRawValues(t *testing.T) {
	b := telemetrytest.NewBuilder("MODE_15W_6CORE", 3)
	ds, err := telemetry.Derive(loadFixture(t, b))
	require.NoError(t, err)

	logFreq, err := ds.Table.Float(telemetry.ColLogGPUFreq)
	require.NoError(t, err)
	logMax, err := ds.Table.Float(telemetry.ColLogGPUMaxFreq)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, math.Log2(rawFloat(t, b, telemetry.ColGPUFreq, i)), logFreq[i])
		assert.Equal(t, math.Log2(1109250000), logMax[i])
	}
}

func TestDerive_EngineSentinelMappedToZero(t *testing.T) {
	b := telemetrytest.NewBuilder("MODE_15W_6CORE", 6)
	ds, err := telemetry.Derive(loadFixture(t, b))
	require.NoError(t, err)

	enc, err := ds.Table.Float(telemetry.ColNVENC)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1049, 0, 1049, 0, 1049}, enc)

	dec, err := ds.Table.Float(telemetry.ColNVDEC)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 716, 716, 0, 716, 716}, dec)
}

func TestReplaceSentinel_Idempotent(t *testing.T) {
	b := telemetrytest.NewBuilder("MODE_15W_6CORE", 4).With(telemetry.ColNVENC, "OFF", "12.5", "OFF", "0")
	once := loadFixture(t, b)
	twice := loadFixture(t, b)

	require.NoError(t, telemetry.ReplaceSentinel(once))
	require.NoError(t, telemetry.ReplaceSentinel(twice))
	require.NoError(t, telemetry.ReplaceSentinel(twice))

	a, err := once.Float(telemetry.ColNVENC)
	require.NoError(t, err)
	c, err := twice.Float(telemetry.ColNVENC)
	require.NoError(t, err)
	assert.Equal(t, a, c)
	assert.Equal(t, []float64{0, 12.5, 0, 0}, a)

	// Once numeric, a further pass changes nothing.
	require.NoError(t, telemetry.ReplaceSentinel(twice))
	c, _ = twice.Float(telemetry.ColNVENC)
	assert.Equal(t, a, c)
}

func TestDropUnplotted_PresentOrAbsent(t *testing.T) {
	full := loadFixture(t, telemetrytest.NewBuilder("MODE_15W_6CORE", 2))
	before := full.Columns()
	dropped := telemetry.DropUnplotted(full)
	assert.ElementsMatch(t, telemetry.UnplottedColumns(), dropped)
	for _, c := range telemetry.UnplottedColumns() {
		assert.False(t, full.Has(c), c)
	}
	assert.Len(t, full.Columns(), len(before)-len(dropped))

	slim := loadFixture(t, telemetrytest.NewBuilder("MODE_15W_6CORE", 2).Without(telemetry.UnplottedColumns()...))
	cols := slim.Columns()
	assert.Empty(t, telemetry.DropUnplotted(slim))
	assert.Equal(t, cols, slim.Columns())

	gpu, err := slim.Float(telemetry.ColGPU)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 33}, gpu)
}

func TestDerive_EmptyTable(t *testing.T) {
	_, err := telemetry.Derive(loadFixture(t, telemetrytest.NewBuilder("MODE_15W_6CORE", 0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, telemetry.ErrEmptyTable))
	assert.Contains(t, err.Error(), "empty input")
}

func TestDerive_BadPowerModel(t *testing.T) {
	_, err := telemetry.Derive(loadFixture(t, telemetrytest.NewBuilder("MODE_15W", 3)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, telemetry.ErrPowerModel))
	assert.Contains(t, err.Error(), "MODE_15W")
}

func TestDerive_NonNumericCell(t *testing.T) {
	b := telemetrytest.NewBuilder("MODE_15W_6CORE", 3).With(telemetry.ColTempCPU, "41.5", "41.0", "hot")
	_, err := telemetry.Derive(loadFixture(t, b))
	require.Error(t, err)

	var perr *telemetry.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, telemetry.ColTempCPU, perr.Column)
	assert.Equal(t, 3, perr.Row)
}
