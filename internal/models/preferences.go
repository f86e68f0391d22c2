package models

// Preferences are the user's display settings, persisted across sessions
type Preferences struct {
	UseCelsius      bool
	UseLightTheme   bool
	LastLocationKey string // Empty when nothing has been searched yet
}

// DefaultPreferences returns the settings used on first launch
func DefaultPreferences() Preferences {
	return Preferences{UseCelsius: true}
}

// HasLastLocation reports whether a previous search can be restored
func (p Preferences) HasLastLocation() bool {
	return p.LastLocationKey != ""
}

// UnitSuffix returns the temperature unit label for the active unit
func (p Preferences) UnitSuffix() string {
	if p.UseCelsius {
		return "°C"
	}
	return "°F"
}
