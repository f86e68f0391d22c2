// Package ui is the interactive dashboard: a bubbletea model that routes
// key presses and lookup results into the display state and renders it.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/render"
	"github.com/ngmaloney/weather-terminal/internal/weather"
	"go.uber.org/zap"
)

const defaultFetchTimeout = 30 * time.Second

// Options wires the model to its collaborators. Zero values get defaults
// except Fetcher, which is required.
type Options struct {
	Fetcher      weather.Fetcher
	Locator      location.Locator
	Store        preferences.Store
	Logger       *zap.Logger
	Preferences  models.Preferences
	FetchTimeout time.Duration
	Location     *time.Location // Display time zone
	StartCity    string         // Overrides the remembered city at startup
	Now          func() time.Time
}

// Model represents the application's state
type Model struct {
	state  *dashboard.State
	width  int
	height int
	now    time.Time

	searchInput textinput.Model
	spinner     spinner.Model

	fetcher      weather.Fetcher
	locator      location.Locator
	store        preferences.Store
	logger       *zap.Logger
	fetchTimeout time.Duration
	loc          *time.Location
	startCity    string
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	if opts.Locator == nil {
		opts.Locator = location.Unsupported{}
	}
	if opts.Store == nil {
		opts.Store = preferences.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search for a city (e.g. London, Tokyo, New York)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	st := stylesFor(opts.Preferences.UseLightTheme)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.spinner

	return Model{
		state:        dashboard.New(opts.Preferences),
		now:          opts.Now(),
		searchInput:  ti,
		spinner:      s,
		fetcher:      opts.Fetcher,
		locator:      opts.Locator,
		store:        opts.Store,
		logger:       opts.Logger,
		fetchTimeout: opts.FetchTimeout,
		loc:          opts.Location,
		startCity:    opts.StartCity,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		clockTick(),
		func() tea.Msg { return startupMsg{} },
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startupMsg:
		return m.startup()

	case currentFetchedMsg:
		return m.handleCurrent(msg)

	case forecastFetchedMsg:
		return m.handleForecast(msg)

	case locatedMsg:
		return m.handleLocated(msg)

	case errorExpiredMsg:
		m.state.DismissError(msg.id)
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()

	case prefSavedMsg:
		if msg.err != nil {
			m.logger.Warn("saving preference failed", zap.String("key", msg.key), zap.Error(msg.err))
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Status() != dashboard.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleKey handles keyboard input. Anything that is not a shortcut goes
// to the search input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		key, err := location.ResolveByText(m.searchInput.Value())
		if err != nil {
			return m, nil
		}
		m.searchInput.SetValue("")
		return m.lookup(key)

	case tea.KeyCtrlL:
		return m.geolocate()

	case tea.KeyCtrlU:
		p := m.state.ToggleUnit()
		return m, saveUnits(m.store, p.UseCelsius)

	case tea.KeyCtrlT:
		p := m.state.ToggleTheme()
		m.spinner.Style = stylesFor(p.UseLightTheme).spinner
		return m, saveTheme(m.store, p.UseLightTheme)

	case tea.KeyEsc:
		if m.state.Status() == dashboard.StatusError {
			m.state.DismissError(m.state.ErrorID())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// startup restores the last city, or tries the user's position when
// there is none
func (m Model) startup() (tea.Model, tea.Cmd) {
	if m.startCity != "" {
		if key, err := location.ResolveByText(m.startCity); err == nil {
			return m.lookup(key)
		}
	}
	if p := m.state.Preferences(); p.HasLastLocation() {
		return m.lookup(models.CityKey(p.LastLocationKey))
	}
	return m.geolocate()
}

// lookup starts a current-weather fetch for key
func (m Model) lookup(key models.LocationKey) (tea.Model, tea.Cmd) {
	req := m.state.BeginFetch()
	m.logger.Debug("looking up weather", zap.Stringer("location", key))
	return m, tea.Batch(m.spinner.Tick, fetchCurrent(m.fetcher, req, key, m.fetchTimeout))
}

func (m Model) geolocate() (tea.Model, tea.Cmd) {
	req := m.state.BeginFetch()
	return m, tea.Batch(m.spinner.Tick, locate(m.locator, req, m.fetchTimeout))
}

func (m Model) handleLocated(msg locatedMsg) (tea.Model, tea.Cmd) {
	if !m.state.IsCurrent(msg.req) {
		m.logger.Debug("dropping stale position fix")
		return m, nil
	}
	if msg.err != nil {
		m.logger.Info("geolocation failed", zap.Error(msg.err))
		id := m.state.FailLocal(location.Message(msg.err))
		return m, expireError(id)
	}
	return m, fetchCurrent(m.fetcher, msg.req, models.CoordsKey(msg.coords), m.fetchTimeout)
}

func (m Model) handleCurrent(msg currentFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		id, ok := m.state.Fail(msg.req, weather.Message(msg.err))
		if !ok {
			m.logger.Debug("dropping stale weather error", zap.Error(msg.err))
			return m, nil
		}
		m.logger.Error("weather lookup failed", zap.Stringer("location", msg.key), zap.Error(msg.err))
		return m, expireError(id)
	}

	if !m.state.ApplyCurrent(msg.req, msg.weather) {
		m.logger.Debug("dropping stale weather", zap.Stringer("location", msg.key))
		return m, nil
	}

	// City searches remember and forecast what the user typed; position
	// lookups use the name the backend resolved
	city := msg.weather.LocationName
	if !msg.key.IsCoords() {
		city = msg.key.City
	}
	m.state.SetLastLocation(city)

	return m, tea.Batch(
		fetchForecast(m.fetcher, msg.req, city, m.fetchTimeout),
		saveLastCity(m.store, city),
	)
}

func (m Model) handleForecast(msg forecastFetchedMsg) (tea.Model, tea.Cmd) {
	// Forecast failures leave the forecast section as it was
	if msg.err != nil {
		m.logger.Warn("forecast lookup failed", zap.Error(msg.err))
		return m, nil
	}
	if !m.state.ApplyForecast(msg.req, msg.forecast) {
		m.logger.Debug("dropping stale forecast")
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	p := m.state.Preferences()
	st := stylesFor(p.UseLightTheme)

	var sections []string

	title := st.title.Render("🌤  Weather Terminal")
	clock := st.muted.Render(render.Clock(m.now.In(m.loc)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", clock))
	sections = append(sections, st.searchBox.Render(m.searchInput.View()))

	switch m.state.Status() {
	case dashboard.StatusLoading:
		sections = append(sections, "", m.spinner.View()+" "+st.muted.Render("Fetching weather..."))
	case dashboard.StatusError:
		sections = append(sections, "", st.err.Render("✗ "+m.state.Error()))
	}

	v := render.Project(m.state.Weather(), m.state.Forecast(), p, m.loc)

	header := &headerSink{}
	panes := newPaneSink(st)
	render.Render(v, header)
	render.Render(v, panes)

	if v.HasWeather || v.HasForecast() {
		sections = append(sections, "")
		if h := header.view(st); h != "" {
			sections = append(sections, h)
		}
		sections = append(sections, panes.layout(m.width))
	} else if m.state.Status() == dashboard.StatusIdle {
		sections = append(sections, "", st.muted.Render("Search for a city to see the weather"))
	}

	unit := "°F"
	if !p.UseCelsius {
		unit = "°C"
	}
	help := st.help.Render("Enter: Search • Ctrl+L: My location • Ctrl+U: " + unit +
		" • Ctrl+T: Theme • Esc: Dismiss • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
