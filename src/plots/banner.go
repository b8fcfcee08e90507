package plots

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/AEPP294/jetson-stats/src/telemetry"
)

const bannerFontSize = 13

var bannerColor = drawing.ColorFromHex("8b0000")

// renderBanner draws the centered two-line figure title.
func renderBanner(width, height int, lines ...string) (image.Image, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "banner renderer")
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, errors.Wrap(err, "banner font")
	}
	chart.Draw.Box(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, chart.Style{
		FillColor:   drawing.ColorWhite,
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 1,
	})

	r.SetFont(f)
	r.SetFontSize(bannerFontSize)
	r.SetFontColor(bannerColor)

	y := 8
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tb := r.MeasureText(line)
		y += tb.Height()
		r.Text(line, (width-tb.Width())/2, y)
		y += 6
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, errors.Wrap(err, "banner encode")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "banner decode")
	}
	return img, nil
}

func captionText(name string, samples int, elapsed float64) string {
	return fmt.Sprintf("source: %s | %d samples | %.1f s at %.0f Hz", name, samples, elapsed, 1/telemetry.SamplePeriod)
}

// drawCaption writes a small line of text along the bottom-left of img.
func drawCaption(img draw.Image, text string) {
	if img == nil || strings.TrimSpace(text) == "" {
		return
	}
	b := img.Bounds()
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 8), Y: fixed.I(b.Max.Y - 5)},
	}
	dr.DrawString(text)
}
