package weathericons

import "path"

// Directories, relative to the repository root, where the icons are written.
const (
	SVGDir = "assets/weather_svg"
	PNGDir = "assets/weather"
)

// ForCode returns the icon identifier for a WMO weather interpretation code.
// Codes without a dedicated icon resolve to "unknown".
func ForCode(code int) string {
	switch code {
	case 0:
		return "clear"
	case 1, 2, 3:
		return "cloudy"
	case 45, 48:
		return "fog"
	case 51, 53, 55:
		return "drizzle"
	case 61, 63, 65:
		return "rain"
	case 71, 73, 75:
		return "snow"
	case 95, 96, 99:
		return "storm"
	default:
		return "unknown"
	}
}

// Description returns the human readable condition for a WMO weather interpretation code.
func Description(code int) string {
	switch code {
	case 0:
		return "Clear sky"
	case 1, 2, 3:
		return "Mainly clear, partly cloudy, and overcast"
	case 45, 48:
		return "Fog and depositing rime fog"
	case 51, 53, 55:
		return "Drizzle: Light, moderate, and dense intensity"
	case 56, 57:
		return "Freezing Drizzle: Light and heavy intensity"
	case 61, 63, 65:
		return "Rain: Slight, moderate and heavy intensity"
	case 66, 67:
		return "Freezing Rain: Light and heavy intensity"
	case 71, 73, 75:
		return "Snow fall: Slight, moderate, and heavy intensity"
	case 77:
		return "Snow grains"
	case 80, 81, 82:
		return "Rain showers: Slight, moderate, and violent"
	case 85, 86:
		return "Snow showers slight and heavy"
	case 95:
		return "Thunderstorm: Slight or moderate"
	case 96, 99:
		return "Thunderstorm with slight and heavy hail"
	default:
		return "Unknown"
	}
}

// SVGFile returns the file name of the icon source inside SVGDir.
func SVGFile(name string) string { return name + ".svg" }

// PNGFile returns the file name of the rasterized icon inside PNGDir.
func PNGFile(name string) string { return name + ".png" }

// PNGPath returns the slash separated path of the rasterized icon, as loaded by the display.
func PNGPath(name string) string {
	return path.Join(PNGDir, PNGFile(name))
}

// SVGPath returns the slash separated path of the icon source.
func SVGPath(name string) string {
	return path.Join(SVGDir, SVGFile(name))
}
