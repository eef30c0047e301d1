//go:build !nonative

package weathericons

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is the SVG initial value of font-size.
const defaultFontSize = 16

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *opentype.Font
	bold      *opentype.Font
)

// svgText is a text element with its inherited presentation attributes resolved.
type svgText struct {
	X, Y    float64
	Size    float64
	Fill    color.Color
	Anchor  string
	Bold    bool
	Content string
}

// textStyle holds the inheritable attributes in effect for an element.
type textStyle struct {
	fill   string
	size   string
	weight string
	anchor string
}

func (s textStyle) with(attrs []xml.Attr) textStyle {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "fill":
			s.fill = attr.Value
		case "font-size":
			s.size = attr.Value
		case "font-weight":
			s.weight = attr.Value
		case "text-anchor":
			s.anchor = attr.Value
		}
	}
	return s
}

// readTexts collects the text elements of an SVG document, which oksvg does not draw.
func readTexts(r io.Reader) ([]svgText, error) {
	var (
		texts   []svgText
		stack   = []textStyle{{fill: "black"}}
		current *svgText
		content strings.Builder
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read the SVG text: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			style := stack[len(stack)-1].with(t.Attr)
			stack = append(stack, style)
			if t.Name.Local != "text" || current != nil {
				continue
			}
			text, err := newText(style, t.Attr)
			if err != nil {
				return nil, err
			}
			current = &text
			content.Reset()
		case xml.CharData:
			if current != nil {
				content.Write(t)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			if t.Name.Local == "text" && current != nil {
				current.Content = strings.TrimSpace(content.String())
				if current.Content != "" && current.Fill != nil {
					texts = append(texts, *current)
				}
				current = nil
			}
		}
	}
	return texts, nil
}

func newText(style textStyle, attrs []xml.Attr) (svgText, error) {
	text := svgText{
		Size:   defaultFontSize,
		Anchor: style.anchor,
		Bold:   isBold(style.weight),
	}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			text.X, err = parseLength(attr.Value)
		case "y":
			text.Y, err = parseLength(attr.Value)
		}
		if err != nil {
			return text, fmt.Errorf("invalid text %s: %w", attr.Name.Local, err)
		}
	}
	if style.size != "" {
		size, err := parseLength(style.size)
		if err != nil {
			return text, fmt.Errorf("invalid font-size: %w", err)
		}
		text.Size = size
	}

	fill, err := oksvg.ParseSVGColor(style.fill)
	if err != nil {
		return text, fmt.Errorf("invalid text fill: %w", err)
	}
	text.Fill = fill

	return text, nil
}

func isBold(weight string) bool {
	switch weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// parseLength parses a user unit length, accepting an optional px suffix.
func parseLength(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
}

func loadFonts() error {
	fontsOnce.Do(func() {
		if regular, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
			return
		}
		bold, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

// drawTexts draws the texts onto dst with the Go fonts, mapping the
// user space coordinates through the icon transform.
func drawTexts(dst *image.RGBA, texts []svgText, m rasterx.Matrix2D) error {
	if len(texts) == 0 {
		return nil
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("could not load the font: %w", err)
	}

	for _, t := range texts {
		f := regular
		if t.Bold {
			f = bold
		}
		_, scale := m.TransformVector(0, 1)
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    t.Size * scale,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return fmt.Errorf("could not create the font face: %w", err)
		}

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(t.Fill),
			Face: face,
		}
		x, y := m.Transform(t.X, t.Y)
		advance := float64(d.MeasureString(t.Content)) / 64
		switch t.Anchor {
		case "middle":
			x -= advance / 2
		case "end":
			x -= advance
		}
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
		d.DrawString(t.Content)

		face.Close()
	}
	return nil
}

// readAll buffers the SVG, since it is parsed once for the shapes and once for the texts.
func readAll(r io.Reader) (*bytes.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read the SVG: %w", err)
	}
	return bytes.NewReader(data), nil
}
