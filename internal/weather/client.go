// Package weather fetches current conditions and forecasts from the
// dashboard's backend API.
package weather

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Fetcher defines the backend lookups used by the dashboard
type Fetcher interface {
	// CurrentByCity retrieves current conditions for a place name
	CurrentByCity(ctx context.Context, city string) (*models.WeatherSnapshot, error)

	// CurrentByCoords retrieves current conditions for a position
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)

	// Forecast retrieves the short-term forecast for a place name. Failures
	// wrap ErrForecastUnavailable.
	Forecast(ctx context.Context, city string) (*models.ForecastSnapshot, error)
}
