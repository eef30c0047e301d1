/*
Package weathericons generates the weather icon assets loaded by the display:
a fixed set of hand written SVG documents, each rasterized to a 256x256 PNG
with a transparent background.

The SVG sources are written under assets/weather_svg and the PNG files under
assets/weather. Rasterization prefers the rsvg-convert command line tool and
falls back to an in-process renderer when the tool is not installed:

	r, err := weathericons.Probe(weathericons.Candidates(weathericons.BackendAuto, nil)...)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := weathericons.NewGenerator(".", r).Generate(ctx); err != nil {
		log.Fatal(err)
	}

The assets are regenerated with:

	$ go generate github.com/esimov/weathericons
*/
package weathericons

//go:generate go run ./cmd/weathericons -root .
