package telemetry

// Column names as written by jtop's CSV logger.
const (
	ColTempAO      = "Temp AO"
	ColTempAUX     = "Temp AUX"
	ColTempCPU     = "Temp CPU"
	ColTempGPU     = "Temp GPU"
	ColTempThermal = "Temp thermal"

	ColCPUMaxFreq = "CPU6max_freq"

	ColGPU        = "GPU"
	ColGPUFreq    = "GPU_FREQ"
	ColGPUMaxFreq = "GPU_MAX_FREQ"

	ColPowerCur = "power cur"
	ColPowerSoC = "soc"
	ColPowerCV  = "cpu_gpu_cv"

	ColNVENC = "NVENC"
	ColNVDEC = "NVDEC"

	ColNVPModel = "nvp model"

	// Derived columns.
	ColSample        = "sample"
	ColLogGPUFreq    = "LOG_GPU_FREQ"
	ColLogGPUMaxFreq = "LOG_GPU_MAX_FREQ"
)

// EngineOff is the value jtop writes for an idle hardware engine.
const EngineOff = "OFF"

// SamplePeriod is the jtop logging interval in seconds (2 Hz).
const SamplePeriod = 0.5

var (
	cpuUtilColumns = []string{"CPU1", "CPU2", "CPU3", "CPU4", "CPU5", "CPU6"}
	cpuFreqColumns = []string{"CPU1freq", "CPU2freq", "CPU3freq", "CPU4freq", "CPU5freq", "CPU6freq"}

	temperatureColumns = []string{ColTempAO, ColTempAUX, ColTempCPU, ColTempGPU, ColTempThermal}
	powerColumns       = []string{ColPowerCur, ColPowerSoC, ColPowerCV}
	engineColumns      = []string{ColNVENC, ColNVDEC}

	// Power rails, memory, swap, fan and uptime are logged but never plotted.
	unplottedColumns = []string{
		"MTS FG", "MTS BG", "RAM", "EMC", "SWAP", "APE", "fan",
		"jetson_clocks", "power avg", "uptime",
	}
)

// CPUUtilColumns returns the per-core utilization columns in core order.
func CPUUtilColumns() []string { return append([]string(nil), cpuUtilColumns...) }

// CPUFreqColumns returns the per-core frequency columns in core order.
func CPUFreqColumns() []string { return append([]string(nil), cpuFreqColumns...) }

// UnplottedColumns returns the columns removed by DropUnplotted.
func UnplottedColumns() []string { return append([]string(nil), unplottedColumns...) }

// khzColumns are converted to MHz by dividing by 1000.
func khzColumns() []string {
	cols := append([]string(nil), cpuFreqColumns...)
	return append(cols, ColGPUFreq, ColCPUMaxFreq)
}

// RequiredColumns lists every source column the transformation or the charts read.
func RequiredColumns() []string {
	var cols []string
	cols = append(cols, temperatureColumns...)
	cols = append(cols, cpuUtilColumns...)
	cols = append(cols, cpuFreqColumns...)
	cols = append(cols, ColCPUMaxFreq, ColGPU, ColGPUFreq, ColGPUMaxFreq)
	cols = append(cols, powerColumns...)
	cols = append(cols, engineColumns...)
	cols = append(cols, ColNVPModel)
	return cols
}

// numericSourceColumns are the required columns that must parse as numbers once
// engine sentinels have been replaced.
func numericSourceColumns() []string {
	var cols []string
	for _, c := range RequiredColumns() {
		if c == ColNVPModel {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}
