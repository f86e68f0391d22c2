package ui

import (
	"time"

	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Message types for async operations

// startupMsg triggers the initial lookup once the program is running
type startupMsg struct{}

// currentFetchedMsg is sent when a current-weather lookup finishes
type currentFetchedMsg struct {
	req     dashboard.Request
	key     models.LocationKey
	weather *models.WeatherSnapshot
	err     error
}

// forecastFetchedMsg is sent when a forecast lookup finishes
type forecastFetchedMsg struct {
	req      dashboard.Request
	forecast *models.ForecastSnapshot
	err      error
}

// locatedMsg is sent when the locator answers
type locatedMsg struct {
	req    dashboard.Request
	coords models.Coordinates
	err    error
}

// errorExpiredMsg dismisses the error with the given id
type errorExpiredMsg struct {
	id uint64
}

// clockTickMsg refreshes the header clock
type clockTickMsg time.Time

// prefSavedMsg reports the outcome of persisting a preference
type prefSavedMsg struct {
	key string
	err error
}
