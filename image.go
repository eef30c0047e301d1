package weathericons

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/weathericons/utils"
	"golang.org/x/image/draw"
)

// ErrInvalidOutput is returned when a renderer produced something other than a usable PNG.
var ErrInvalidOutput = errors.New("invalid renderer output")

// verifyPNG checks that the file at path is a decodable PNG. An image with
// different dimensions is rescaled to width x height and saved in place.
func verifyPNG(path string, width, height int) error {
	ok, err := utils.IsPNG(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a PNG file", ErrInvalidOutput, path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("%w: could not decode %s: %v", ErrInvalidOutput, path, err)
	}
	if b := img.Bounds(); b.Dx() == width && b.Dy() == height {
		return nil
	}

	if err := imaging.Save(resize(img, width, height), path); err != nil {
		return fmt.Errorf("unable to save the rescaled image: %w", err)
	}
	return nil
}

// resize scales the image to the given dimensions onto a transparent canvas.
func resize(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), imgToNRGBA(src), src.Bounds().Sub(src.Bounds().Min), draw.Src, nil)

	return dst
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dst := image.NewNRGBA(dstBounds)

	for dstY := 0; dstY < dstBounds.Dy(); dstY++ {
		di := dst.PixOffset(0, dstY)
		for dstX := 0; dstX < dstBounds.Dx(); dstX++ {
			c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
			dst.Pix[di+0] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = c.A
			di += 4
		}
	}

	return dst
}
