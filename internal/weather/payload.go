package weather

import (
	"encoding/json"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Internal types for backend responses

type errorResponse struct {
	Error string `json:"error"`
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
}

type forecastResponse struct {
	Forecast *[]struct {
		Dt   int64   `json:"dt"`
		Temp float64 `json:"temp"`
		Icon string  `json:"icon"`
	} `json:"forecast"`
}

func parseCurrent(body []byte) (*models.WeatherSnapshot, error) {
	var data currentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &ParseError{Err: err}
	}

	switch {
	case data.Name == "":
		return nil, &ParseError{Field: "name"}
	case data.Main == nil:
		return nil, &ParseError{Field: "main"}
	case len(data.Weather) == 0:
		return nil, &ParseError{Field: "weather"}
	}

	return &models.WeatherSnapshot{
		LocationName:     data.Name,
		CountryCode:      data.Sys.Country,
		Description:      data.Weather[0].Description,
		TemperatureC:     data.Main.Temp,
		FeelsLikeC:       data.Main.FeelsLike,
		TempMinC:         data.Main.TempMin,
		TempMaxC:         data.Main.TempMax,
		HumidityPct:      clampPct(int(data.Main.Humidity)),
		PressureHpa:      int(data.Main.Pressure),
		WindSpeedMs:      data.Wind.Speed,
		WindDirectionDeg: int(data.Wind.Deg),
		VisibilityMeters: int(data.Visibility),
		CloudinessPct:    clampPct(int(data.Clouds.All)),
		ConditionMain:    data.Weather[0].Main,
		ConditionIcon:    data.Weather[0].Icon,
		SunriseEpoch:     data.Sys.Sunrise,
		SunsetEpoch:      data.Sys.Sunset,
	}, nil
}

func parseForecast(body []byte, city string) (*models.ForecastSnapshot, error) {
	var data forecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &ParseError{Err: err}
	}
	if data.Forecast == nil {
		return nil, &ParseError{Field: "forecast"}
	}

	entries := make([]models.ForecastEntry, 0, len(*data.Forecast))
	for _, item := range *data.Forecast {
		entries = append(entries, models.ForecastEntry{
			TimestampEpoch: item.Dt,
			TemperatureC:   item.Temp,
			ConditionIcon:  item.Icon,
		})
	}

	return models.NewForecastSnapshot(city, entries), nil
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
