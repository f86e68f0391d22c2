package units

import (
	"errors"
	"math"
	"testing"
)

func TestToFahrenheit(t *testing.T) {
	tests := []struct {
		c    float64
		want float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{15, 59},
		{37, 98.6},
	}

	for _, tt := range tests {
		got := ToFahrenheit(tt.c)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ToFahrenheit(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestFahrenheitRoundTrip(t *testing.T) {
	for c := -100; c <= 100; c++ {
		back := Round(ToCelsius(ToFahrenheit(float64(c))))
		if back != c {
			t.Errorf("round trip of %d°C gave %d", c, back)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.4, 2},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDewPointC(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity int
		want     int
	}{
		{"saturated air equals temperature", 20, 100, 20},
		{"temperate", 20, 50, 9},
		{"warm humid", 30, 70, 24},
		{"freezing", 0, 80, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DewPointC(tt.temp, tt.humidity)
			if err != nil {
				t.Fatalf("DewPointC() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DewPointC(%v, %d) = %d, want %d", tt.temp, tt.humidity, got, tt.want)
			}
		})
	}
}

func TestDewPointC_DefinedForValidHumidity(t *testing.T) {
	for h := 1; h <= 100; h++ {
		for _, temp := range []float64{-30, -5, 0, 12.5, 25, 45} {
			if _, err := DewPointC(temp, h); err != nil {
				t.Errorf("DewPointC(%v, %d) unexpected error: %v", temp, h, err)
			}
		}
	}
}

func TestDewPointC_HumidityBoundary(t *testing.T) {
	for _, h := range []int{0, -10, 101} {
		_, err := DewPointC(20, h)
		if !errors.Is(err, ErrHumidityOutOfRange) {
			t.Errorf("DewPointC(20, %d) error = %v, want ErrHumidityOutOfRange", h, err)
		}
	}
}

func TestWindDirectionLabel(t *testing.T) {
	tests := []struct {
		deg  int
		want string
	}{
		{0, "N"},
		{22, "N"},
		{23, "NE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{337, "NW"},
		{338, "N"},
		{359, "N"},
		{360, "N"},
		{405, "NE"},
		{-45, "NW"},
		{-90, "W"},
	}

	for _, tt := range tests {
		if got := WindDirectionLabel(tt.deg); got != tt.want {
			t.Errorf("WindDirectionLabel(%d) = %s, want %s", tt.deg, got, tt.want)
		}
	}
}

func TestWindDirectionLabel_Periodic(t *testing.T) {
	for deg := -720; deg <= 720; deg++ {
		if WindDirectionLabel(deg) != WindDirectionLabel(deg+360) {
			t.Fatalf("label(%d) = %s, label(%d) = %s", deg, WindDirectionLabel(deg), deg+360, WindDirectionLabel(deg+360))
		}
	}
}

func TestMsToKmh(t *testing.T) {
	if got := MsToKmh(3.5); got != 13 {
		t.Errorf("MsToKmh(3.5) = %d, want 13", got)
	}
	if got := MsToKmh(0); got != 0 {
		t.Errorf("MsToKmh(0) = %d, want 0", got)
	}
}

func TestMetersToKm(t *testing.T) {
	if got := MetersToKm(10000); got != 10 {
		t.Errorf("MetersToKm(10000) = %v, want 10", got)
	}
}
