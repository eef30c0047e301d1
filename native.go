//go:build !nonative

package weathericons

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const nativeBuilt = true

// rasterize parses the SVG stream and scales it to fill a width x height canvas.
// Text elements are drawn with the Go fonts on top of the shapes.
func rasterize(r io.Reader, width, height int) (*image.NRGBA, error) {
	src, err := readAll(r)
	if err != nil {
		return nil, err
	}
	texts, err := readTexts(src)
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(src)
	if err != nil {
		return nil, fmt.Errorf("could not parse the SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1)

	if err := drawTexts(rgba, texts, icon.Transform); err != nil {
		return nil, err
	}

	return imgToNRGBA(rgba), nil
}
