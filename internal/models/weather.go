package models

import (
	"sort"
	"time"
)

// WeatherSnapshot is the latest known current conditions for a location.
// All temperatures are Celsius; unit conversion happens at render time.
// A snapshot is never modified after construction, only replaced.
type WeatherSnapshot struct {
	LocationName     string
	CountryCode      string
	Description      string // e.g., "overcast clouds"
	TemperatureC     float64
	FeelsLikeC       float64
	TempMinC         float64
	TempMaxC         float64
	HumidityPct      int // 0-100
	PressureHpa      int
	WindSpeedMs      float64
	WindDirectionDeg int
	VisibilityMeters int
	CloudinessPct    int    // 0-100
	ConditionMain    string // e.g., "Clear", "Clouds", "Rain"
	ConditionIcon    string // OpenWeather icon code, e.g., "01d"
	SunriseEpoch     int64
	SunsetEpoch      int64
}

// Sunrise returns the sunrise time
func (w *WeatherSnapshot) Sunrise() time.Time {
	return time.Unix(w.SunriseEpoch, 0)
}

// Sunset returns the sunset time
func (w *WeatherSnapshot) Sunset() time.Time {
	return time.Unix(w.SunsetEpoch, 0)
}

// ForecastEntry is a single point in the short-term forecast
type ForecastEntry struct {
	TimestampEpoch int64
	TemperatureC   float64
	ConditionIcon  string
}

// Time returns the entry timestamp
func (e ForecastEntry) Time() time.Time {
	return time.Unix(e.TimestampEpoch, 0)
}

// ForecastSnapshot is the ordered forecast for a location
type ForecastSnapshot struct {
	Location string
	Entries  []ForecastEntry // Ordered by time
}

// NewForecastSnapshot builds a snapshot with entries sorted chronologically.
// The input slice is copied.
func NewForecastSnapshot(location string, entries []ForecastEntry) *ForecastSnapshot {
	sorted := make([]ForecastEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimestampEpoch < sorted[j].TimestampEpoch
	})
	return &ForecastSnapshot{Location: location, Entries: sorted}
}
