// Package report runs the load, derive, render and export pipeline for one
// telemetry log and writes the figure next to it.
package report

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/AEPP294/jetson-stats/src/config"
	"github.com/AEPP294/jetson-stats/src/logging"
	"github.com/AEPP294/jetson-stats/src/plots"
	"github.com/AEPP294/jetson-stats/src/telemetry"
)

// Generator turns one CSV log into one PNG figure.
type Generator struct {
	cfg *config.Config
	out io.Writer
}

// NewGenerator returns a generator printing progress lines to stdout.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, out: os.Stdout}
}

// SetOutput redirects progress lines; nil restores stdout.
func (g *Generator) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	g.out = w
}

// Run processes the log at path and returns the location of the written image.
// Nothing is written when any step fails.
func (g *Generator) Run(path string) (string, error) {
	fmt.Fprintf(g.out, "file to plot: %s\n", path)

	start := time.Now()
	tbl, err := telemetry.LoadCSV(path, telemetry.RequiredColumns())
	if err != nil {
		return "", err
	}
	logging.TimeTrack(start, "load")

	start = time.Now()
	ds, err := telemetry.Derive(tbl)
	if err != nil {
		return "", errors.Wrapf(err, "derive %s", path)
	}
	logging.TimeTrack(start, "derive")
	logging.Debugf("%d samples, columns: %s", ds.Table.Len(), strings.Join(ds.Table.Columns(), ", "))

	if logging.GetLogLevel() <= logging.LevelDebug {
		sums, err := telemetry.Summarize(ds.Table, PlottedColumns())
		if err != nil {
			return "", err
		}
		for _, s := range sums {
			logging.Debugf("%s", s)
		}
	}
	fmt.Fprintln(g.out, ds.Model.String())

	start = time.Now()
	img, err := plots.Render(ds, plots.Options{
		Width:       g.cfg.Width,
		Height:      g.cfg.Height,
		TitlePrefix: g.cfg.TitlePrefix,
		Name:        BaseName(path),
	})
	if err != nil {
		return "", errors.Wrapf(err, "render %s", path)
	}
	logging.TimeTrack(start, "render")

	start = time.Now()
	dst := OutputPath(path)
	if err := WritePNG(dst, img); err != nil {
		return "", err
	}
	logging.TimeTrack(start, "write")
	logging.Infof("wrote %s", dst)

	fmt.Fprintf(g.out, "Plot saved in directory: %s/\n", filepath.Dir(dst))
	return dst, nil
}

// PlottedColumns lists every column drawn by the figure, panel by panel.
func PlottedColumns() []string {
	var cols []string
	for _, p := range plots.Panels() {
		for _, s := range p.Series {
			cols = append(cols, s.Column)
		}
	}
	return cols
}

// BaseName is the file name of path without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath places the figure next to the input, swapping the extension for .png.
func OutputPath(in string) string {
	return filepath.Join(filepath.Dir(in), BaseName(in)+".png")
}

// WritePNG encodes img to path through a temporary file in the same directory
// that is renamed into place only after a complete encode.
func WritePNG(path string, img image.Image) error {
	if img == nil {
		return errors.New("no image to write")
	}
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
	)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer pf.Cleanup()

	if err := png.Encode(pf, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
