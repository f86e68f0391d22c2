package preferences

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Persisted keys
const (
	KeyTheme    = "theme"
	KeyLastCity = "lastCity"
	KeyUnits    = "units"
)

const (
	themeLight    = "light"
	themeDark     = "dark"
	unitsMetric   = "metric"
	unitsImperial = "imperial"
)

// Load reads preferences, falling back to defaults for missing keys.
// Unrecognized values are treated as missing.
func Load(ctx context.Context, s Store) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	theme, ok, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return prefs, err
	}
	if ok {
		prefs.UseLightTheme = theme == themeLight
	}

	units, ok, err := s.Get(ctx, KeyUnits)
	if err != nil {
		return prefs, err
	}
	if ok && units == unitsImperial {
		prefs.UseCelsius = false
	}

	city, ok, err := s.Get(ctx, KeyLastCity)
	if err != nil {
		return prefs, err
	}
	if ok {
		prefs.LastLocationKey = city
	}

	return prefs, nil
}

// SaveTheme persists the theme choice
func SaveTheme(ctx context.Context, s Store, light bool) error {
	value := themeDark
	if light {
		value = themeLight
	}
	return s.Set(ctx, KeyTheme, value)
}

// SaveUnits persists the temperature unit choice
func SaveUnits(ctx context.Context, s Store, celsius bool) error {
	value := unitsImperial
	if celsius {
		value = unitsMetric
	}
	return s.Set(ctx, KeyUnits, value)
}

// SaveLastCity persists the last successfully fetched location
func SaveLastCity(ctx context.Context, s Store, city string) error {
	return s.Set(ctx, KeyLastCity, city)
}
