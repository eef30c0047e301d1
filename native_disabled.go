//go:build nonative

package weathericons

import (
	"errors"
	"image"
	"io"
)

const nativeBuilt = false

func rasterize(io.Reader, int, int) (*image.NRGBA, error) {
	return nil, errors.New("built with the nonative tag")
}
