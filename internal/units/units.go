// Package units converts temperatures and derives the secondary
// meteorological values shown on the dashboard.
package units

import (
	"errors"
	"math"
)

// Magnus formula coefficients
const (
	magnusA = 17.27
	magnusB = 237.7
)

// ErrHumidityOutOfRange is returned by DewPointC when the relative humidity
// cannot be fed to the logarithm in the Magnus formula.
var ErrHumidityOutOfRange = errors.New("humidity must be within 1-100%")

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// ToFahrenheit converts Celsius to Fahrenheit
func ToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// ToCelsius converts Fahrenheit to Celsius
func ToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Round rounds half up to the nearest integer (2.5 -> 3, -2.5 -> -2).
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DewPointC approximates the dew point in Celsius using the Magnus formula.
// Humidity of 0 (or below) has no defined dew point.
func DewPointC(tempC float64, humidityPct int) (int, error) {
	if humidityPct <= 0 || humidityPct > 100 {
		return 0, ErrHumidityOutOfRange
	}

	alpha := (magnusA*tempC)/(magnusB+tempC) + math.Log(float64(humidityPct)/100)
	dew := (magnusB * alpha) / (magnusA - alpha)
	if math.IsNaN(dew) || math.IsInf(dew, 0) {
		return 0, ErrHumidityOutOfRange
	}

	return Round(dew), nil
}

// WindDirectionLabel maps a bearing in degrees to an 8-point compass label.
// Bearings outside [0, 360) are wrapped first, so -45 is NW and 405 is NE.
func WindDirectionLabel(deg int) string {
	norm := deg % 360
	if norm < 0 {
		norm += 360
	}
	idx := Round(float64(norm)/45) % 8
	return compassPoints[idx]
}

// MsToKmh converts a wind speed in meters/second to whole km/h
func MsToKmh(ms float64) int {
	return Round(ms * 3.6)
}

// MetersToKm converts a visibility distance to kilometers
func MetersToKm(m int) float64 {
	return float64(m) / 1000
}
