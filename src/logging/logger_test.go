package logging

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	saved := GetLogLevel()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		switch saved {
		case LevelDebug:
			SetLogLevel("debug")
		case LevelWarn:
			SetLogLevel("warn")
		case LevelError:
			SetLogLevel("error")
		default:
			SetLogLevel("info")
		}
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	msg := "power cur mean=4.2W (100.0% of budget) over 120 samples"
	Infof(msg)

	out := buf.String()
	assert.Contains(t, out, "(100.0% of budget)")
	assert.NotContains(t, out, "%!o(MISSING)")
	assert.NotContains(t, out, "%!(NOVERB)")
}

func TestSetLogLevel_FiltersBelowThreshold(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Equal(t, LevelWarn, GetLogLevel())
}

func TestSetLogLevel_UnknownNameIgnored(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	SetLogLevel("verbose")
	assert.Equal(t, LevelDebug, GetLogLevel())

	SetLogLevel("  WARNING ")
	assert.Equal(t, LevelWarn, GetLogLevel())
}

func TestTimeTrack_LogsAtDebug(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("debug")

	TimeTrack(time.Now().Add(-time.Millisecond), "render")
	assert.Contains(t, buf.String(), "render took")
}
