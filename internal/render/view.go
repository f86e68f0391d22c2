// Package render projects display state into display strings. Projection
// is pure: the same snapshot and preferences always give the same View.
package render

import (
	"fmt"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

const (
	timeLayout  = "03:04 PM"
	clockLayout = "Mon, Jan 2, 03:04 PM"
	unknown     = "--"
)

// View is everything the dashboard displays, already formatted
type View struct {
	HasWeather  bool
	Location    string
	Country     string
	Description string
	Icon        string
	Mood        Mood

	Temperature string // "15°"
	FeelsLike   string // "15°C"
	TempMax     string
	TempMin     string

	Details Details

	Sunrise string
	Sunset  string

	Forecast []ForecastRow
}

// Details are the secondary readings
type Details struct {
	Humidity      string
	HumidityPct   int
	Wind          string
	WindDirection string
	Visibility    string
	Pressure      string
	Cloudiness    string
	CloudinessPct int
	DewPoint      string
}

// ForecastRow is one forecast entry
type ForecastRow struct {
	Time        string
	Icon        string
	Temperature string
}

// HasForecast reports whether there are forecast rows to show
func (v View) HasForecast() bool {
	return len(v.Forecast) > 0
}

// Project builds the View for the given state. Either snapshot may be nil.
// Times are formatted in loc.
func Project(w *models.WeatherSnapshot, f *models.ForecastSnapshot, p models.Preferences, loc *time.Location) View {
	if loc == nil {
		loc = time.Local
	}

	var v View
	if w != nil {
		v = projectWeather(w, p, loc)
	}
	if f != nil {
		v.Forecast = projectForecast(f, p, loc)
	}
	return v
}

func projectWeather(w *models.WeatherSnapshot, p models.Preferences, loc *time.Location) View {
	suffix := p.UnitSuffix()

	v := View{
		HasWeather:  true,
		Location:    w.LocationName,
		Country:     w.CountryCode,
		Description: w.Description,
		Icon:        IconFor(w.ConditionIcon),
		Mood:        MoodFor(w.ConditionMain),
		Temperature: fmt.Sprintf("%d°", displayTemp(w.TemperatureC, p)),
		FeelsLike:   fmt.Sprintf("%d%s", displayTemp(w.FeelsLikeC, p), suffix),
		TempMax:     fmt.Sprintf("%d°", displayTemp(w.TempMaxC, p)),
		TempMin:     fmt.Sprintf("%d°", displayTemp(w.TempMinC, p)),
		Sunrise:     w.Sunrise().In(loc).Format(timeLayout),
		Sunset:      w.Sunset().In(loc).Format(timeLayout),
	}

	v.Details = Details{
		Humidity:      fmt.Sprintf("%d%%", w.HumidityPct),
		HumidityPct:   w.HumidityPct,
		Wind:          fmt.Sprintf("%d km/h", units.MsToKmh(w.WindSpeedMs)),
		WindDirection: "Direction: " + units.WindDirectionLabel(w.WindDirectionDeg),
		Visibility:    fmt.Sprintf("%.1f km", units.MetersToKm(w.VisibilityMeters)),
		Pressure:      fmt.Sprintf("%d hPa", w.PressureHpa),
		Cloudiness:    fmt.Sprintf("%d%%", w.CloudinessPct),
		CloudinessPct: w.CloudinessPct,
		DewPoint:      unknown,
	}

	if dew, err := units.DewPointC(w.TemperatureC, w.HumidityPct); err == nil {
		// Convert the rounded Celsius dew point, as the dashboard always has
		dewDisplay := dew
		if !p.UseCelsius {
			dewDisplay = units.Round(units.ToFahrenheit(float64(dew)))
		}
		v.Details.DewPoint = fmt.Sprintf("%d%s", dewDisplay, suffix)
	}

	return v
}

func projectForecast(f *models.ForecastSnapshot, p models.Preferences, loc *time.Location) []ForecastRow {
	rows := make([]ForecastRow, 0, len(f.Entries))
	for _, e := range f.Entries {
		rows = append(rows, ForecastRow{
			Time:        e.Time().In(loc).Format(timeLayout),
			Icon:        IconFor(e.ConditionIcon),
			Temperature: fmt.Sprintf("%d%s", displayTemp(e.TemperatureC, p), p.UnitSuffix()),
		})
	}
	return rows
}

// displayTemp converts a stored Celsius value to the active unit and rounds
func displayTemp(c float64, p models.Preferences) int {
	if p.UseCelsius {
		return units.Round(c)
	}
	return units.Round(units.ToFahrenheit(c))
}

// Clock formats the header clock
func Clock(now time.Time) string {
	return now.Format(clockLayout)
}
