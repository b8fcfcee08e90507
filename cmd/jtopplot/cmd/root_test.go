package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AEPP294/jetson-stats/src/telemetry/telemetrytest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")

	_, err = execute(t, "a.csv", "b.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "received 2")
}

func TestRootCmd_PlotsFile(t *testing.T) {
	t.Setenv("JTOPPLOT_WIDTH", "900")
	t.Setenv("JTOPPLOT_HEIGHT", "720")

	dir := t.TempDir()
	in := telemetrytest.NewBuilder("MODE_15W_6CORE", 5).WriteFile(t, dir, "bench.csv")

	out, err := execute(t, in)
	require.NoError(t, err)
	assert.Contains(t, out, "file to plot: "+in)
	assert.Contains(t, out, "Plot saved in directory: "+dir+"/")
	_, err = os.Stat(filepath.Join(dir, "bench.png"))
	assert.NoError(t, err)
}

func TestRootCmd_InvalidGeometry(t *testing.T) {
	t.Setenv("JTOPPLOT_HEIGHT", "100")
	_, err := execute(t, filepath.Join(t.TempDir(), "x.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid height")
}

func TestRootCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
	entries, rerr := os.ReadDir(dir)
	require.NoError(t, rerr)
	assert.Empty(t, entries)
}
