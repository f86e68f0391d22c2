package render

import "strings"

// Mood is the background tint chosen from the weather condition
type Mood string

const (
	MoodClear        Mood = "clear"
	MoodCloudy       Mood = "cloudy"
	MoodRainy        Mood = "rainy"
	MoodThunderstorm Mood = "thunderstorm"
	MoodSnowy        Mood = "snowy"
)

var conditionMoods = map[string]Mood{
	"clear":        MoodClear,
	"clouds":       MoodCloudy,
	"mist":         MoodCloudy,
	"fog":          MoodCloudy,
	"haze":         MoodCloudy,
	"rain":         MoodRainy,
	"drizzle":      MoodRainy,
	"thunderstorm": MoodThunderstorm,
	"snow":         MoodSnowy,
}

// MoodFor maps a backend condition ("Clouds", "Rain", ...) to a Mood.
// Unknown conditions are clear.
func MoodFor(condition string) Mood {
	if mood, ok := conditionMoods[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return mood
	}
	return MoodClear
}

const defaultIcon = "☀️"

// Keyed by OpenWeather icon code
var weatherIcons = map[string]string{
	"01d": "☀️", "01n": "🌙",
	"02d": "⛅", "02n": "☁️",
	"03d": "☁️", "03n": "☁️",
	"04d": "☁️", "04n": "☁️",
	"09d": "🌧️", "09n": "🌧️",
	"10d": "🌦️", "10n": "🌧️",
	"11d": "⛈️", "11n": "⛈️",
	"13d": "❄️", "13n": "❄️",
	"50d": "🌫️", "50n": "🌫️",
}

// IconFor returns the glyph for an icon code, a sun when unknown
func IconFor(code string) string {
	if icon, ok := weatherIcons[code]; ok {
		return icon
	}
	return defaultIcon
}
