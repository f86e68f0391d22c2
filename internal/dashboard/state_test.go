package dashboard

import (
	"testing"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

func snapshot(name string, tempC float64) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{LocationName: name, TemperatureC: tempC, HumidityPct: 50}
}

func TestNew(t *testing.T) {
	s := New(models.DefaultPreferences())

	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle", s.Status())
	}
	if s.Weather() != nil || s.Forecast() != nil {
		t.Error("new state should hold no snapshots")
	}
	if s.Error() != "" {
		t.Errorf("Error() = %q, want empty", s.Error())
	}
}

func TestFetchSuccess(t *testing.T) {
	s := New(models.DefaultPreferences())

	req := s.BeginFetch()
	if s.Status() != StatusLoading {
		t.Fatalf("Status() = %v, want loading", s.Status())
	}

	if !s.ApplyCurrent(req, snapshot("London", 15)) {
		t.Fatal("ApplyCurrent() rejected current request")
	}
	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle", s.Status())
	}
	if s.Weather().LocationName != "London" {
		t.Errorf("Weather().LocationName = %s", s.Weather().LocationName)
	}
	if s.Preferences().LastLocationKey != "London" {
		t.Errorf("LastLocationKey = %q, want London", s.Preferences().LastLocationKey)
	}

	f := models.NewForecastSnapshot("London", []models.ForecastEntry{{TimestampEpoch: 1, TemperatureC: 10}})
	if !s.ApplyForecast(req, f) {
		t.Fatal("ApplyForecast() rejected current request")
	}
	if s.Forecast() != f {
		t.Error("Forecast() not replaced")
	}
}

func TestFetchFailureKeepsSnapshots(t *testing.T) {
	s := New(models.DefaultPreferences())
	first := s.BeginFetch()
	s.ApplyCurrent(first, snapshot("London", 15))
	f := models.NewForecastSnapshot("London", nil)
	s.ApplyForecast(first, f)

	req := s.BeginFetch()
	id, ok := s.Fail(req, "city not found")
	if !ok {
		t.Fatal("Fail() rejected current request")
	}

	if s.Status() != StatusError {
		t.Errorf("Status() = %v, want error", s.Status())
	}
	if s.Error() != "city not found" {
		t.Errorf("Error() = %q, want %q", s.Error(), "city not found")
	}
	if s.Weather().LocationName != "London" || s.Forecast() != f {
		t.Error("failure must leave snapshots unchanged")
	}
	if s.Preferences().LastLocationKey != "London" {
		t.Error("failure must not change LastLocationKey")
	}

	if !s.DismissError(id) {
		t.Fatal("DismissError() rejected current id")
	}
	if s.Status() != StatusIdle || s.Error() != "" {
		t.Errorf("after dismiss: status %v, error %q", s.Status(), s.Error())
	}
}

func TestForecastKeptAcrossNewCurrent(t *testing.T) {
	s := New(models.DefaultPreferences())
	first := s.BeginFetch()
	s.ApplyCurrent(first, snapshot("London", 15))
	f := models.NewForecastSnapshot("London", nil)
	s.ApplyForecast(first, f)

	// New location succeeds but its forecast never arrives
	second := s.BeginFetch()
	s.ApplyCurrent(second, snapshot("Paris", 18))

	if s.Weather().LocationName != "Paris" {
		t.Errorf("Weather() = %s, want Paris", s.Weather().LocationName)
	}
	if s.Forecast() != f {
		t.Error("previous forecast should remain until replaced")
	}
}

func TestStaleResponsesDiscarded(t *testing.T) {
	s := New(models.DefaultPreferences())

	slow := s.BeginFetch()
	fast := s.BeginFetch()

	if !s.ApplyCurrent(fast, snapshot("Paris", 18)) {
		t.Fatal("latest request rejected")
	}

	// The earlier request resolves afterwards and must not win
	if s.ApplyCurrent(slow, snapshot("London", 15)) {
		t.Error("stale ApplyCurrent() accepted")
	}
	if s.ApplyForecast(slow, models.NewForecastSnapshot("London", nil)) {
		t.Error("stale ApplyForecast() accepted")
	}
	if _, ok := s.Fail(slow, "timeout"); ok {
		t.Error("stale Fail() accepted")
	}

	if s.Weather().LocationName != "Paris" {
		t.Errorf("Weather() = %s, want Paris", s.Weather().LocationName)
	}
	if s.Status() != StatusIdle {
		t.Errorf("Status() = %v, want idle", s.Status())
	}
}

func TestDismissErrorIgnoresOldID(t *testing.T) {
	s := New(models.DefaultPreferences())

	oldID := s.FailLocal("first")
	newID := s.FailLocal("second")

	if s.DismissError(oldID) {
		t.Error("old error id dismissed the newer error")
	}
	if s.Error() != "second" {
		t.Errorf("Error() = %q, want second", s.Error())
	}
	if !s.DismissError(newID) {
		t.Error("DismissError() rejected current id")
	}
}

func TestDismissAfterNewFetch(t *testing.T) {
	s := New(models.DefaultPreferences())
	id := s.FailLocal("boom")

	s.BeginFetch()
	if s.DismissError(id) {
		t.Error("DismissError() should not touch loading state")
	}
	if s.Status() != StatusLoading {
		t.Errorf("Status() = %v, want loading", s.Status())
	}
}

func TestFailLocalSupersedesFetch(t *testing.T) {
	s := New(models.DefaultPreferences())
	req := s.BeginFetch()

	s.FailLocal("Unable to get your location. Please search manually.")

	if s.ApplyCurrent(req, snapshot("London", 15)) {
		t.Error("fetch started before a local failure should be stale")
	}
}

func TestToggles(t *testing.T) {
	s := New(models.DefaultPreferences())
	req := s.BeginFetch()
	w := snapshot("London", 15)
	s.ApplyCurrent(req, w)

	p := s.ToggleUnit()
	if p.UseCelsius {
		t.Error("ToggleUnit() should switch to Fahrenheit")
	}
	if s.Weather() != w || w.TemperatureC != 15 {
		t.Error("unit toggle must not modify the stored snapshot")
	}

	p = s.ToggleTheme()
	if !p.UseLightTheme {
		t.Error("ToggleTheme() should switch to light")
	}

	// Toggles work while a fetch is in flight
	s.BeginFetch()
	s.ToggleUnit()
	if !s.Preferences().UseCelsius || s.Status() != StatusLoading {
		t.Errorf("toggle during loading: prefs %+v status %v", s.Preferences(), s.Status())
	}
}

func TestStatus_String(t *testing.T) {
	if StatusIdle.String() != "idle" || StatusLoading.String() != "loading" || StatusError.String() != "error" {
		t.Error("unexpected Status strings")
	}
}

func TestSetLastLocation(t *testing.T) {
	s := New(models.DefaultPreferences())

	req := s.BeginFetch()
	s.ApplyCurrent(req, snapshot("City of London", 15))
	s.SetLastLocation("london")

	if got := s.Preferences().LastLocationKey; got != "london" {
		t.Errorf("LastLocationKey = %q, want london", got)
	}
}

func TestErrorID(t *testing.T) {
	s := New(models.DefaultPreferences())

	req := s.BeginFetch()
	id, _ := s.Fail(req, "city not found")
	if s.ErrorID() != id {
		t.Errorf("ErrorID() = %d, want %d", s.ErrorID(), id)
	}
}

func TestForecastForDisplayedWeatherAfterLaterFailure(t *testing.T) {
	s := New(models.DefaultPreferences())

	paris := s.BeginFetch()
	s.ApplyCurrent(paris, snapshot("Paris", 18))
	s.ApplyForecast(paris, models.NewForecastSnapshot("Paris", nil))

	london := s.BeginFetch()
	s.ApplyCurrent(london, snapshot("London", 15))

	// A later lookup fails before London's forecast arrives
	failed := s.BeginFetch()
	s.Fail(failed, "city not found")

	f := models.NewForecastSnapshot("London", nil)
	if !s.ApplyForecast(london, f) {
		t.Fatal("forecast for the displayed weather was rejected")
	}
	if s.Forecast() != f {
		t.Errorf("Forecast().Location = %s, want London", s.Forecast().Location)
	}

	// The same holds after a local failure
	s.FailLocal("Unable to get your location. Please search manually.")
	f2 := models.NewForecastSnapshot("London", nil)
	if !s.ApplyForecast(london, f2) {
		t.Error("forecast rejected after a local failure")
	}

	// A forecast from a lookup whose weather was replaced is still dropped
	if s.ApplyForecast(paris, models.NewForecastSnapshot("Paris", nil)) {
		t.Error("forecast for replaced weather accepted")
	}
}
