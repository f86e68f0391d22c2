package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/location"
	"github.com/ngmaloney/weather-terminal/internal/logging"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/render"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
	"go.uber.org/zap"
)

func main() {
	city := flag.String("city", "", "City to show at startup instead of the last searched one")
	printOnly := flag.Bool("print", false, "Print the weather for -city (or the last city) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := openStore(cfg.Storage.DBPath, logger)
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}
	prefs, err := preferences.Load(context.Background(), store)
	if err != nil {
		logger.Warn("loading preferences failed, using defaults", zap.Error(err))
	}

	fetcher := weather.NewClient(cfg.API.BaseURL, weather.Options{
		Timeout:        cfg.API.Timeout,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}, logger)

	if *printOnly {
		target := *city
		if target == "" {
			target = prefs.LastLocationKey
		}
		if err := printWeather(context.Background(), fetcher, target, prefs, cfg.API.FetchTimeout, os.Stdout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	locator, err := location.New(location.Options{
		Mode:      cfg.Geolocation.Mode,
		URL:       cfg.Geolocation.URL,
		Latitude:  cfg.Geolocation.Latitude,
		Longitude: cfg.Geolocation.Longitude,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring geolocation: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting",
		zap.String("api", cfg.API.BaseURL),
		zap.String("geolocation", cfg.Geolocation.Mode),
		zap.Bool("celsius", prefs.UseCelsius))

	m := ui.NewModel(ui.Options{
		Fetcher:      fetcher,
		Locator:      locator,
		Store:        store,
		Logger:       logger,
		Preferences:  prefs,
		FetchTimeout: cfg.API.FetchTimeout,
		StartCity:    *city,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the sqlite preference store. Preferences are not worth
// refusing to start over, so failures fall back to memory.
func openStore(dbPath string, logger *zap.Logger) preferences.Store {
	store, err := preferences.OpenSQLiteStore(dbPath)
	if err != nil {
		logger.Warn("opening preference store failed, preferences will not persist",
			zap.String("path", dbPath), zap.Error(err))
		return preferences.NewMemoryStore()
	}
	return store
}

// printWeather renders current conditions and the forecast for city as
// plain text
func printWeather(ctx context.Context, f weather.Fetcher, city string, prefs models.Preferences, timeout time.Duration, out io.Writer, logger *zap.Logger) error {
	key, err := location.ResolveByText(city)
	if err != nil {
		return errors.New("no city given; use -city")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	current, err := f.CurrentByCity(ctx, key.City)
	if err != nil {
		return errors.New(weather.Message(err))
	}

	// The forecast is optional, as in the dashboard
	forecast, err := f.Forecast(ctx, key.City)
	if err != nil {
		logger.Warn("forecast lookup failed", zap.String("city", key.City), zap.Error(err))
		forecast = nil
	}

	sink := &render.TextSink{}
	render.Render(render.Project(current, forecast, prefs, time.Local), sink)
	_, err = fmt.Fprintln(out, sink.String())
	return err
}
