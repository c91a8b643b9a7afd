// Package weather classifies Open-Meteo weather codes and fetches current
// conditions.
//
// Two description mappings exist on purpose: Describe is the terse mapping
// consumed by scoring and insight text, DisplayDescription (with Emoji) is
// the richer mapping used for display strings. They bucket the code ranges
// slightly differently and both are part of the public contract.
package weather

// Category is a coarse condition bucket derived from an Open-Meteo code.
type Category string

const (
	CategoryClear    Category = "clear"
	CategoryCloudy   Category = "cloudy"
	CategoryOvercast Category = "overcast"
	CategoryFog      Category = "fog"
	CategoryRain     Category = "rain"
	CategorySnow     Category = "snow"
	CategoryShowers  Category = "showers"
	CategoryStorm    Category = "storm"
)

// Classify maps an Open-Meteo weather code to a coarse category.
// Total over all integers; codes outside the documented scheme fall into
// CategoryStorm, matching the display mapping's fallback.
func Classify(code int) Category {
	switch {
	case code == 0:
		return CategoryClear
	case code <= 2:
		return CategoryCloudy
	case code == 3:
		return CategoryOvercast
	case code <= 49:
		return CategoryFog
	case code <= 69:
		return CategoryRain
	case code <= 79:
		return CategorySnow
	case code <= 84:
		return CategoryShowers
	default:
		return CategoryStorm
	}
}

// Describe returns the terse condition description used in briefing summary
// and insight text.
func Describe(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code <= 3:
		return "Partly cloudy"
	case code <= 48:
		return "Foggy"
	case code <= 67:
		return "Rainy"
	case code <= 77:
		return "Snowy"
	case code <= 82:
		return "Showers"
	case code <= 99:
		return "Thunderstorms"
	default:
		return "Unknown"
	}
}

// DisplayDescription returns the display-facing condition description.
func DisplayDescription(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code <= 2:
		return "Partly Cloudy"
	case code == 3:
		return "Overcast"
	case code <= 49:
		return "Foggy"
	case code <= 69:
		return "Rainy"
	case code <= 79:
		return "Snowy"
	case code <= 84:
		return "Showers"
	default:
		return "Stormy"
	}
}

// Emoji returns the emoji matching DisplayDescription's buckets.
func Emoji(code int) string {
	switch {
	case code == 0:
		return "☀️"
	case code <= 2:
		return "⛅"
	case code == 3:
		return "☁️"
	case code <= 49:
		return "🌫️"
	case code <= 69:
		return "🌧️"
	case code <= 79:
		return "🌨️"
	case code <= 84:
		return "🌦️"
	default:
		return "⛈️"
	}
}
