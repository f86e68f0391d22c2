package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
	"go.uber.org/zap"
)

// demoFetcher serves mock data for a few cities
type demoFetcher struct {
	cities map[string]*models.WeatherSnapshot
}

func (d demoFetcher) CurrentByCity(_ context.Context, city string) (*models.WeatherSnapshot, error) {
	if w, ok := d.cities[strings.ToLower(city)]; ok {
		return w, nil
	}
	return nil, &weather.HTTPError{Status: 404, Message: "city not found"}
}

func (d demoFetcher) CurrentByCoords(_ context.Context, _, _ float64) (*models.WeatherSnapshot, error) {
	return d.cities["seattle"], nil
}

func (d demoFetcher) Forecast(_ context.Context, city string) (*models.ForecastSnapshot, error) {
	w, ok := d.cities[strings.ToLower(city)]
	if !ok {
		return nil, weather.ErrForecastUnavailable
	}

	now := time.Now().Truncate(3 * time.Hour)
	icons := []string{"02d", "03d", "10d", "10n", "01n"}

	entries := make([]models.ForecastEntry, 0, len(icons))
	for i, icon := range icons {
		entries = append(entries, models.ForecastEntry{
			TimestampEpoch: now.Add(time.Duration(i+1) * 3 * time.Hour).Unix(),
			TemperatureC:   w.TemperatureC - float64(i),
			ConditionIcon:  icon,
		})
	}
	return models.NewForecastSnapshot(w.LocationName, entries), nil
}

func mockCity(name, country, main, description, icon string, tempC float64, humidity int) *models.WeatherSnapshot {
	now := time.Now()
	return &models.WeatherSnapshot{
		LocationName:     name,
		CountryCode:      country,
		Description:      description,
		TemperatureC:     tempC,
		FeelsLikeC:       tempC - 1.5,
		TempMinC:         tempC - 3,
		TempMaxC:         tempC + 2,
		HumidityPct:      humidity,
		PressureHpa:      1014,
		WindSpeedMs:      4.2,
		WindDirectionDeg: 270,
		VisibilityMeters: 10000,
		CloudinessPct:    40,
		ConditionMain:    main,
		ConditionIcon:    icon,
		SunriseEpoch:     time.Date(now.Year(), now.Month(), now.Day(), 6, 45, 0, 0, time.Local).Unix(),
		SunsetEpoch:      time.Date(now.Year(), now.Month(), now.Day(), 19, 12, 0, 0, time.Local).Unix(),
	}
}

// This demo shows the UI with mock data
func main() {
	fetcher := demoFetcher{cities: map[string]*models.WeatherSnapshot{
		"seattle": mockCity("Seattle", "US", "Clouds", "partly cloudy", "02d", 14.5, 68),
		"london":  mockCity("London", "GB", "Rain", "light rain", "10d", 11.2, 81),
		"tokyo":   mockCity("Tokyo", "JP", "Clear", "clear sky", "01d", 22.8, 55),
		"oslo":    mockCity("Oslo", "NO", "Snow", "light snow", "13d", -2.4, 90),
		"miami":   mockCity("Miami", "US", "Thunderstorm", "thunderstorm", "11d", 29.1, 78),
	}}

	m := ui.NewModel(ui.Options{
		Fetcher:     fetcher,
		Locator:     location.StaticLocator{Coords: models.Coordinates{Latitude: 47.6062, Longitude: -122.3321}},
		Store:       preferences.NewMemoryStore(),
		Logger:      zap.NewNop(),
		Preferences: models.DefaultPreferences(),
		StartCity:   "Seattle",
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
