//go:build !nonative

package weathericons

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNative_RendersEveryIcon(t *testing.T) {
	root := t.TempDir()
	gen := NewGenerator(root, &NativeRenderer{})

	results, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(Names()))

	for _, res := range results {
		t.Run(res.Name, func(t *testing.T) {
			assert.Equal(t, "oksvg", res.Backend)

			img, err := imaging.Open(res.PNGPath)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())

			// the background stays transparent while the drawing itself is opaque
			_, _, _, a := img.At(0, 0).RGBA()
			assert.Zero(t, a)

			var opaque bool
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if _, _, _, a := img.At(x, y).RGBA(); a == 0xffff {
						opaque = true
						break
					}
				}
			}
			assert.True(t, opaque, "no opaque pixel found")
		})
	}
}

func TestNative_ClearIconIsYellowSun(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir, &NativeRenderer{})
	_, err := gen.Generate(context.Background())
	require.NoError(t, err)

	img, err := imaging.Open(filepath.Join(dir, "assets", "weather", "clear.png"))
	require.NoError(t, err)

	r, g, b, a := img.At(128, 128).RGBA()
	assert.Equal(t, uint32(0xff), r>>8)
	assert.Equal(t, uint32(0xd7), g>>8)
	assert.Equal(t, uint32(0x00), b>>8)
	assert.Equal(t, uint32(0xff), a>>8)
}

func TestNative_ProbeFallsBackWhenToolIsMissing(t *testing.T) {
	ext := &ExternalRenderer{Command: []string{"weathericons-no-such-converter"}}

	r, err := Probe(Candidates(BackendAuto, ext)...)
	require.NoError(t, err)
	assert.Equal(t, "oksvg", r.Name())
}

func TestNative_Rasterize(t *testing.T) {
	icon, _ := Lookup("fog")
	img, err := rasterize(strings.NewReader(icon.SVG), 64, 64)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	// the middle fog bar crosses the center of the canvas
	assert.NotZero(t, img.NRGBAAt(32, 35).A)
	assert.Zero(t, img.NRGBAAt(0, 0).A)
}

func TestNative_UnknownIconDrawsQuestionMark(t *testing.T) {
	icon, _ := Lookup("unknown")
	img, err := rasterize(strings.NewReader(icon.SVG), Size, Size)
	require.NoError(t, err)

	var (
		count int
		sumX  int
	)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx, dy := x-128, y-128
			if dx*dx+dy*dy > 60*60 {
				continue
			}
			c := img.NRGBAAt(x, y)
			if c.A == 0xff {
				assert.Equal(t, color.NRGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}, c, "pixel %d,%d", x, y)
			}
			if c.A > 0 {
				count++
				sumX += x
			}
		}
	}
	require.Greater(t, count, 500, "no glyph drawn inside the ring")

	// text-anchor="middle" centers the glyph horizontally on x=128
	assert.InDelta(t, 128, float64(sumX)/float64(count), 12)
}

func TestNative_ReadTexts(t *testing.T) {
	icon, _ := Lookup("unknown")
	texts, err := readTexts(strings.NewReader(icon.SVG))
	require.NoError(t, err)
	require.Len(t, texts, 1)

	text := texts[0]
	assert.Equal(t, "?", text.Content)
	assert.Equal(t, 128.0, text.X)
	assert.Equal(t, 160.0, text.Y)
	assert.Equal(t, 96.0, text.Size)
	assert.Equal(t, "middle", text.Anchor)
	assert.True(t, text.Bold)
	r, g, b, a := text.Fill.RGBA()
	assert.Equal(t, []uint32{0xa9, 0xa9, 0xa9, 0xff}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})

	texts, err = readTexts(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg">
  <g fill="#FF0000" font-size="20px" text-anchor="end">
    <text x="10" y="20">hi</text>
    <text x="1" y="2" fill="none">hidden</text>
  </g>
  <text x="5" y="6" font-weight="400"> </text>
</svg>`))
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "hi", texts[0].Content)
	assert.Equal(t, 20.0, texts[0].Size)
	assert.Equal(t, "end", texts[0].Anchor)
	assert.False(t, texts[0].Bold)

	_, err = readTexts(strings.NewReader(`<svg><text x="abc" y="1">?</text></svg>`))
	assert.Error(t, err)
}

func TestNative_IconsWithoutTextAreUnchanged(t *testing.T) {
	for _, icon := range All() {
		texts, err := readTexts(strings.NewReader(icon.SVG))
		require.NoError(t, err)
		if icon.Name == "unknown" {
			assert.Len(t, texts, 1)
			continue
		}
		assert.Empty(t, texts, icon.Name)
	}
}
