package weathericons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_ForCode(t *testing.T) {
	testCases := []struct {
		codes []int
		want  string
	}{
		{codes: []int{0}, want: "clear"},
		{codes: []int{1, 2, 3}, want: "cloudy"},
		{codes: []int{45, 48}, want: "fog"},
		{codes: []int{51, 53, 55}, want: "drizzle"},
		{codes: []int{61, 63, 65}, want: "rain"},
		{codes: []int{71, 73, 75}, want: "snow"},
		{codes: []int{95, 96, 99}, want: "storm"},
		{codes: []int{-1, 4, 56, 80, 100}, want: "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			for _, code := range tc.codes {
				assert.Equal(t, tc.want, ForCode(code), "code %d", code)
			}
			_, ok := Lookup(tc.want)
			assert.True(t, ok, "%s has no icon", tc.want)
		})
	}
}

func TestCode_Paths(t *testing.T) {
	assert.Equal(t, "assets/weather/clear.png", PNGPath("clear"))
	assert.Equal(t, "assets/weather_svg/storm.svg", SVGPath("storm"))
	assert.Equal(t, "assets/weather/unknown.png", PNGPath(ForCode(12)))
}

func TestCode_Description(t *testing.T) {
	testCases := []struct {
		codes []int
		want  string
	}{
		{codes: []int{0}, want: "Clear sky"},
		{codes: []int{1, 2, 3}, want: "Mainly clear, partly cloudy, and overcast"},
		{codes: []int{45, 48}, want: "Fog and depositing rime fog"},
		{codes: []int{51, 53, 55}, want: "Drizzle: Light, moderate, and dense intensity"},
		{codes: []int{56, 57}, want: "Freezing Drizzle: Light and heavy intensity"},
		{codes: []int{61, 63, 65}, want: "Rain: Slight, moderate and heavy intensity"},
		{codes: []int{66, 67}, want: "Freezing Rain: Light and heavy intensity"},
		{codes: []int{71, 73, 75}, want: "Snow fall: Slight, moderate, and heavy intensity"},
		{codes: []int{77}, want: "Snow grains"},
		{codes: []int{80, 81, 82}, want: "Rain showers: Slight, moderate, and violent"},
		{codes: []int{85, 86}, want: "Snow showers slight and heavy"},
		{codes: []int{95}, want: "Thunderstorm: Slight or moderate"},
		{codes: []int{96, 99}, want: "Thunderstorm with slight and heavy hail"},
		{codes: []int{-1, 4, 100}, want: "Unknown"},
	}

	for _, tc := range testCases {
		for _, code := range tc.codes {
			assert.Equal(t, tc.want, Description(code), "code %d", code)
		}
	}

	// codes with a description but no dedicated icon still resolve to an icon
	for _, code := range []int{56, 57, 66, 67, 77, 80, 81, 82, 85, 86} {
		assert.Equal(t, "unknown", ForCode(code), "code %d", code)
	}
}

func TestCode_FileNames(t *testing.T) {
	assert.Equal(t, "fog.svg", SVGFile("fog"))
	assert.Equal(t, "fog.png", PNGFile("fog"))
}
