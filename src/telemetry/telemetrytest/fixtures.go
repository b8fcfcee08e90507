// Package telemetrytest builds synthetic jtop CSV logs for tests.
package telemetrytest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Header is a full jtop header, including columns that are never plotted.
var Header = []string{
	"time", "uptime", "jetson_clocks", "nvp model",
	"CPU1", "CPU2", "CPU3", "CPU4", "CPU5", "CPU6",
	"CPU1freq", "CPU2freq", "CPU3freq", "CPU4freq", "CPU5freq", "CPU6freq", "CPU6max_freq",
	"GPU", "GPU_FREQ", "GPU_MAX_FREQ",
	"MTS FG", "MTS BG", "RAM", "EMC", "SWAP", "APE", "NVENC", "NVDEC", "fan",
	"Temp AO", "Temp AUX", "Temp CPU", "Temp GPU", "Temp thermal",
	"power cur", "power avg", "soc", "cpu_gpu_cv",
}

// Builder assembles a CSV log row by row.
type Builder struct {
	model     string
	rows      int
	omit      map[string]bool
	overrides map[string][]string
}

// NewBuilder returns a builder producing rows of plausible Xavier NX readings.
func NewBuilder(model string, rows int) *Builder {
	return &Builder{model: model, rows: rows, omit: map[string]bool{}, overrides: map[string][]string{}}
}

// Without drops a column from the header and every row.
func (b *Builder) Without(cols ...string) *Builder {
	for _, c := range cols {
		b.omit[c] = true
	}
	return b
}

// With replaces the values of one column; row i uses values[i%len(values)].
func (b *Builder) With(col string, values ...string) *Builder {
	b.overrides[col] = values
	return b
}

// Value is the default cell for col at row i.
func (b *Builder) Value(col string, i int) string {
	if vs, ok := b.overrides[col]; ok && len(vs) > 0 {
		return vs[i%len(vs)]
	}
	switch col {
	case "time":
		return fmt.Sprintf("2021-03-04 10:00:%02d.%d", i/2, (i%2)*5)
	case "uptime":
		return fmt.Sprintf("1 day, 2:%02d:%02d", i/120, (i/2)%60)
	case "jetson_clocks":
		return "OFF"
	case "nvp model":
		return b.model
	case "CPU1", "CPU2", "CPU3", "CPU4", "CPU5", "CPU6":
		return fmt.Sprintf("%d", (10*i+int(col[3]-'0')*7)%101)
	case "CPU1freq", "CPU2freq", "CPU3freq", "CPU4freq", "CPU5freq", "CPU6freq":
		return fmt.Sprintf("%d", 1190400+int(col[3]-'0')*1000+i*500)
	case "CPU6max_freq":
		return "1420800"
	case "GPU":
		return fmt.Sprintf("%d", (i*33)%100)
	case "GPU_FREQ":
		return fmt.Sprintf("%d", 114750+i*100000)
	case "GPU_MAX_FREQ":
		return "1109250000"
	case "NVENC":
		if i%2 == 0 {
			return "OFF"
		}
		return "1049"
	case "NVDEC":
		if i%3 == 0 {
			return "OFF"
		}
		return "716"
	case "fan":
		return "0.0"
	case "Temp AO", "Temp AUX", "Temp CPU", "Temp GPU", "Temp thermal":
		return fmt.Sprintf("%.1f", 35+float64(i)*0.5+float64(len(col))*0.25)
	case "power cur":
		return fmt.Sprintf("%d", 5000+i*250)
	case "soc":
		return fmt.Sprintf("%d", 1500+i*10)
	case "cpu_gpu_cv":
		return fmt.Sprintf("%d", 900+i*100)
	}
	return fmt.Sprintf("%d", i)
}

// String renders the CSV text.
func (b *Builder) String() string {
	var cols []string
	for _, c := range Header {
		if !b.omit[c] {
			cols = append(cols, c)
		}
	}
	var sb strings.Builder
	writeRow(&sb, cols)
	for i := 0; i < b.rows; i++ {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = b.Value(c, i)
		}
		writeRow(&sb, cells)
	}
	return sb.String()
}

// WriteFile writes the CSV under dir as name and returns its path.
func (b *Builder) WriteFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

func writeRow(sb *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		if strings.ContainsAny(c, ",\"") {
			c = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		sb.WriteString(c)
	}
	sb.WriteByte('\n')
}
