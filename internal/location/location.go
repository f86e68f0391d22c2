// Package location turns user input or a position fix into a location key
// for weather lookups.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrEmptyInput is returned when a search contains only whitespace
	ErrEmptyInput = errors.New("location cannot be empty")

	// ErrUnsupported is returned when no position source is configured
	ErrUnsupported = errors.New("geolocation is not supported")

	// ErrPermissionDenied is returned when the position source refuses the request
	ErrPermissionDenied = errors.New("geolocation permission denied")

	// ErrPositionUnavailable is returned when the position source has no fix
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrLocationTimeout is returned when the position source does not answer in time
	ErrLocationTimeout = errors.New("geolocation timed out")
)

// User-facing messages
const (
	msgUnsupported = "Geolocation is not supported by your terminal"
	msgUnavailable = "Unable to get your location. Please search manually."
)

// Message returns the text shown to the user for a geolocation failure
func Message(err error) string {
	if errors.Is(err, ErrUnsupported) {
		return msgUnsupported
	}
	return msgUnavailable
}

// ResolveByText normalizes free-text input into a city key
func ResolveByText(input string) (models.LocationKey, error) {
	city := strings.TrimSpace(input)
	if city == "" {
		return models.LocationKey{}, ErrEmptyInput
	}
	return models.CityKey(city), nil
}

// Locator obtains a single position fix. Locate blocks until the source
// answers, fails, or ctx is done; there is no retry.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// Options selects and configures a Locator
type Options struct {
	Mode      string // "ip", "static" or "off"
	URL       string // IP geolocation endpoint for "ip"
	Latitude  float64
	Longitude float64
}

// New builds the Locator described by opts
func New(opts Options, logger *zap.Logger) (Locator, error) {
	switch opts.Mode {
	case "ip":
		return NewIPLocator(opts.URL, logger), nil
	case "static":
		return StaticLocator{Coords: models.Coordinates{Latitude: opts.Latitude, Longitude: opts.Longitude}}, nil
	case "off", "":
		return Unsupported{}, nil
	default:
		return nil, fmt.Errorf("unknown geolocation mode %q", opts.Mode)
	}
}

// StaticLocator always reports the same configured position
type StaticLocator struct {
	Coords models.Coordinates
}

func (s StaticLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, ErrLocationTimeout
	}
	return s.Coords, nil
}

// Unsupported is the Locator used when geolocation is disabled
type Unsupported struct{}

func (Unsupported) Locate(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, ErrUnsupported
}
