package models

import "fmt"

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String formats coordinates for logs and query strings
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// LocationKey identifies a weather lookup, either by free-text place name
// or by coordinates. Exactly one of City or Coords is set.
type LocationKey struct {
	City   string
	Coords *Coordinates
}

// CityKey builds a key for a place name
func CityKey(city string) LocationKey {
	return LocationKey{City: city}
}

// CoordsKey builds a key for a coordinate pair
func CoordsKey(c Coordinates) LocationKey {
	return LocationKey{Coords: &c}
}

// IsCoords reports whether the key is a coordinate lookup
func (k LocationKey) IsCoords() bool {
	return k.Coords != nil
}

func (k LocationKey) String() string {
	if k.Coords != nil {
		return k.Coords.String()
	}
	return k.City
}
