package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// fakeFetcher serves canned snapshots and counts every lookup
type fakeFetcher struct {
	mu sync.Mutex

	cities      map[string]*models.WeatherSnapshot
	byCoords    *models.WeatherSnapshot
	forecastErr error

	cityCalls     []string
	coordCalls    []models.Coordinates
	forecastCalls []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		cities: map[string]*models.WeatherSnapshot{
			"London": londonWeather(),
			"Paris":  {LocationName: "Paris", CountryCode: "FR", TemperatureC: 18, HumidityPct: 60, ConditionMain: "Clear", ConditionIcon: "01d"},
		},
	}
}

func (f *fakeFetcher) CurrentByCity(_ context.Context, city string) (*models.WeatherSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cityCalls = append(f.cityCalls, city)

	if w, ok := f.cities[city]; ok {
		return w, nil
	}
	return nil, &weather.HTTPError{Status: 404, Message: "city not found"}
}

func (f *fakeFetcher) CurrentByCoords(_ context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coordCalls = append(f.coordCalls, models.Coordinates{Latitude: lat, Longitude: lon})

	if f.byCoords == nil {
		return nil, &weather.HTTPError{Status: 500, Message: "Unable to fetch weather data for your location."}
	}
	return f.byCoords, nil
}

func (f *fakeFetcher) Forecast(_ context.Context, city string) (*models.ForecastSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecastCalls = append(f.forecastCalls, city)

	if f.forecastErr != nil {
		return nil, f.forecastErr
	}
	return models.NewForecastSnapshot(city, []models.ForecastEntry{
		{TimestampEpoch: 1700049600, TemperatureC: 14.8, ConditionIcon: "04d"},
		{TimestampEpoch: 1700060400, TemperatureC: 12.1, ConditionIcon: "10d"},
	}), nil
}

func (f *fakeFetcher) weatherCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cityCalls) + len(f.coordCalls)
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cityCalls) + len(f.coordCalls) + len(f.forecastCalls)
}

// fakeLocator answers with a fixed position or error
type fakeLocator struct {
	coords models.Coordinates
	err    error
}

func (l fakeLocator) Locate(context.Context) (models.Coordinates, error) {
	return l.coords, l.err
}

func londonWeather() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		LocationName:     "London",
		CountryCode:      "GB",
		Description:      "broken clouds",
		TemperatureC:     15.2,
		FeelsLikeC:       14.6,
		TempMinC:         13.9,
		TempMaxC:         16.4,
		HumidityPct:      72,
		PressureHpa:      1012,
		WindSpeedMs:      3.6,
		WindDirectionDeg: 230,
		VisibilityMeters: 10000,
		CloudinessPct:    75,
		ConditionMain:    "Clouds",
		ConditionIcon:    "04d",
		SunriseEpoch:     1700032920,
		SunsetEpoch:      1700065200,
	}
}

func newTestModel(f *fakeFetcher, opts Options) Model {
	opts.Fetcher = f
	if opts.Store == nil {
		opts.Store = preferences.NewMemoryStore()
	}
	if opts.Preferences == (models.Preferences{}) {
		opts.Preferences = models.DefaultPreferences()
	}
	opts.Location = time.UTC
	opts.Now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC) }

	m := NewModel(opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// collect runs cmd and returns the messages produced within a short
// window. Timer commands such as error expiry and the clock do not fire
// in that window.
func collect(cmd tea.Cmd) []tea.Msg {
	return collectWithin(cmd, 200*time.Millisecond)
}

// collectWithin runs cmd, expanding batches, and returns every message
// produced before window elapses
func collectWithin(cmd tea.Cmd, window time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}

	results := make(chan tea.Msg, 64)
	launch := func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() { results <- c() }()
	}
	launch(cmd)

	var msgs []tea.Msg
	timeout := time.After(window)
	for {
		select {
		case msg := <-results:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					launch(c)
				}
				continue
			}
			if msg != nil {
				msgs = append(msgs, msg)
			}
		case <-timeout:
			return msgs
		}
	}
}

// settle feeds msg to the model, then keeps feeding back every lookup
// result the resulting commands produce until there are none left
func settle(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		m = updated.(Model)

		for _, out := range collect(cmd) {
			switch out.(type) {
			case currentFetchedMsg, forecastFetchedMsg, locatedMsg, prefSavedMsg:
				queue = append(queue, out)
			}
		}
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func search(m Model, city string) Model {
	m = typeText(m, city)
	return settle(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func storedValue(t *testing.T, s preferences.Store, key string) string {
	t.Helper()
	v, ok, err := s.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get(%s) error = %v", key, err)
	}
	if !ok {
		return ""
	}
	return v
}
