package render

import (
	"fmt"
	"strings"
)

// Sink receives a View one named slot at a time. Output targets implement
// only the slots they display by embedding NopSink.
type Sink interface {
	Location(name, country string)
	Condition(icon string, mood Mood, description string)
	Temperature(current, feelsLike, high, low string)
	Details(d Details)
	Sun(sunrise, sunset string)
	Forecast(rows []ForecastRow)
}

// NopSink ignores every slot
type NopSink struct{}

func (NopSink) Location(string, string)                    {}
func (NopSink) Condition(string, Mood, string)             {}
func (NopSink) Temperature(string, string, string, string) {}
func (NopSink) Details(Details)                            {}
func (NopSink) Sun(string, string)                         {}
func (NopSink) Forecast([]ForecastRow)                     {}

// Render pushes v into s. Weather slots are skipped when there is no
// weather; the forecast slot is skipped when there are no rows.
func Render(v View, s Sink) {
	if v.HasWeather {
		s.Location(v.Location, v.Country)
		s.Condition(v.Icon, v.Mood, v.Description)
		s.Temperature(v.Temperature, v.FeelsLike, v.TempMax, v.TempMin)
		s.Details(v.Details)
		s.Sun(v.Sunrise, v.Sunset)
	}
	if v.HasForecast() {
		s.Forecast(v.Forecast)
	}
}

// TextSink renders plain text, used for one-shot output
type TextSink struct {
	lines []string
}

func (t *TextSink) Location(name, country string) {
	if country != "" {
		name = fmt.Sprintf("%s, %s", name, country)
	}
	t.lines = append(t.lines, name)
}

func (t *TextSink) Condition(icon string, _ Mood, description string) {
	t.lines = append(t.lines, fmt.Sprintf("%s  %s", icon, description))
}

func (t *TextSink) Temperature(current, feelsLike, high, low string) {
	t.lines = append(t.lines,
		fmt.Sprintf("Temperature: %s (feels like %s)", current, feelsLike),
		fmt.Sprintf("High/Low: %s / %s", high, low))
}

func (t *TextSink) Details(d Details) {
	t.lines = append(t.lines,
		fmt.Sprintf("Humidity: %s", d.Humidity),
		fmt.Sprintf("Wind: %s (%s)", d.Wind, d.WindDirection),
		fmt.Sprintf("Visibility: %s", d.Visibility),
		fmt.Sprintf("Pressure: %s", d.Pressure),
		fmt.Sprintf("Cloudiness: %s", d.Cloudiness),
		fmt.Sprintf("Dew point: %s", d.DewPoint))
}

func (t *TextSink) Sun(sunrise, sunset string) {
	t.lines = append(t.lines, fmt.Sprintf("Sunrise: %s  Sunset: %s", sunrise, sunset))
}

func (t *TextSink) Forecast(rows []ForecastRow) {
	t.lines = append(t.lines, "", "Forecast:")
	for _, r := range rows {
		t.lines = append(t.lines, fmt.Sprintf("  %s  %s  %s", r.Time, r.Icon, r.Temperature))
	}
}

// String returns the collected text
func (t *TextSink) String() string {
	return strings.Join(t.lines, "\n")
}
