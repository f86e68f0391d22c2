// Package dashboard holds the display state: the current weather and
// forecast snapshots plus the user's preferences. State is owned by a
// single event loop and is not safe for concurrent use.
package dashboard

import "github.com/ngmaloney/weather-terminal/internal/models"

// Status is the dashboard's activity indicator
type Status int

const (
	StatusIdle    Status = iota // Showing whatever is in state
	StatusLoading               // A lookup is in flight
	StatusError                 // A transient error is displayed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Request identifies one lookup. Results carrying an older Request than
// the latest one started are stale and are dropped.
type Request struct {
	gen uint64
}

// State is the single source of truth for what the dashboard shows
type State struct {
	weather  *models.WeatherSnapshot
	forecast *models.ForecastSnapshot
	prefs    models.Preferences

	status     Status
	errMessage string
	errorID    uint64

	generation uint64
	weatherGen uint64 // Request that produced weather
}

// New creates a State with the given preferences and no snapshots
func New(prefs models.Preferences) *State {
	return &State{prefs: prefs}
}

func (s *State) Weather() *models.WeatherSnapshot   { return s.weather }
func (s *State) Forecast() *models.ForecastSnapshot { return s.forecast }
func (s *State) Preferences() models.Preferences    { return s.prefs }
func (s *State) Status() Status                     { return s.status }

// Error returns the displayed error message, empty when none is shown
func (s *State) Error() string {
	if s.status != StatusError {
		return ""
	}
	return s.errMessage
}

// ErrorID identifies the error currently displayed
func (s *State) ErrorID() uint64 {
	return s.errorID
}

// BeginFetch marks a new lookup as the latest and enters the loading state
func (s *State) BeginFetch() Request {
	s.generation++
	s.status = StatusLoading
	s.errMessage = ""
	return Request{gen: s.generation}
}

// IsCurrent reports whether req is the latest lookup
func (s *State) IsCurrent(req Request) bool {
	return req.gen == s.generation
}

// ApplyCurrent replaces the weather snapshot if req is still current.
// The previous forecast is kept until a new one arrives.
func (s *State) ApplyCurrent(req Request, w *models.WeatherSnapshot) bool {
	if !s.IsCurrent(req) || w == nil {
		return false
	}
	s.weather = w
	s.weatherGen = req.gen
	s.prefs.LastLocationKey = w.LocationName
	s.status = StatusIdle
	s.errMessage = ""
	return true
}

// SetLastLocation records the key to restore on the next launch. City
// searches keep the text the user typed rather than the backend's name.
func (s *State) SetLastLocation(key string) {
	s.prefs.LastLocationKey = key
}

// ApplyForecast replaces the forecast snapshot if req is the lookup that
// produced the displayed weather. Later lookups that fail or are still in
// flight do not block it.
func (s *State) ApplyForecast(req Request, f *models.ForecastSnapshot) bool {
	if req.gen != s.weatherGen || f == nil {
		return false
	}
	s.forecast = f
	return true
}

// Fail records a failed lookup. Snapshots are left untouched. The returned
// id is passed to DismissError once the message should disappear.
func (s *State) Fail(req Request, message string) (uint64, bool) {
	if !s.IsCurrent(req) {
		return 0, false
	}
	return s.showError(message), true
}

// FailLocal records an error that did not come from a fetch, such as a
// geolocation failure. It also ends any lookup in flight.
func (s *State) FailLocal(message string) uint64 {
	s.generation++
	return s.showError(message)
}

// DismissError clears the error if id is still the one displayed
func (s *State) DismissError(id uint64) bool {
	if s.status != StatusError || id != s.errorID {
		return false
	}
	s.status = StatusIdle
	s.errMessage = ""
	return true
}

// ToggleUnit flips between Celsius and Fahrenheit
func (s *State) ToggleUnit() models.Preferences {
	s.prefs.UseCelsius = !s.prefs.UseCelsius
	return s.prefs
}

// ToggleTheme flips between the light and dark theme
func (s *State) ToggleTheme() models.Preferences {
	s.prefs.UseLightTheme = !s.prefs.UseLightTheme
	return s.prefs
}

func (s *State) showError(message string) uint64 {
	s.errorID++
	s.status = StatusError
	s.errMessage = message
	return s.errorID
}
