package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// errorDisplayDuration is how long an error stays on screen
const errorDisplayDuration = 5 * time.Second

// persistTimeout bounds a single preference write
const persistTimeout = 2 * time.Second

// fetchCurrent looks up current conditions for a city or coordinate key
func fetchCurrent(f weather.Fetcher, req dashboard.Request, key models.LocationKey, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var (
			w   *models.WeatherSnapshot
			err error
		)
		if key.IsCoords() {
			w, err = f.CurrentByCoords(ctx, key.Coords.Latitude, key.Coords.Longitude)
		} else {
			w, err = f.CurrentByCity(ctx, key.City)
		}
		return currentFetchedMsg{req: req, key: key, weather: w, err: err}
	}
}

// fetchForecast looks up the forecast for a city
func fetchForecast(f weather.Fetcher, req dashboard.Request, city string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		forecast, err := f.Forecast(ctx, city)
		return forecastFetchedMsg{req: req, forecast: forecast, err: err}
	}
}

// locate asks the locator for a single position fix
func locate(l location.Locator, req dashboard.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		coords, err := l.Locate(ctx)
		return locatedMsg{req: req, coords: coords, err: err}
	}
}

// expireError schedules dismissal of the error with the given id
func expireError(id uint64) tea.Cmd {
	return tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
		return errorExpiredMsg{id: id}
	})
}

// clockTick fires on every wall-clock minute
func clockTick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func savePreference(key string, save func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		return prefSavedMsg{key: key, err: save(ctx)}
	}
}

func saveTheme(s preferences.Store, light bool) tea.Cmd {
	return savePreference(preferences.KeyTheme, func(ctx context.Context) error {
		return preferences.SaveTheme(ctx, s, light)
	})
}

func saveUnits(s preferences.Store, celsius bool) tea.Cmd {
	return savePreference(preferences.KeyUnits, func(ctx context.Context) error {
		return preferences.SaveUnits(ctx, s, celsius)
	})
}

func saveLastCity(s preferences.Store, city string) tea.Cmd {
	return savePreference(preferences.KeyLastCity, func(ctx context.Context) error {
		return preferences.SaveLastCity(ctx, s, city)
	})
}
