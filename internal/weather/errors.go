package weather

import (
	"errors"
	"fmt"
)

// Fallback messages when the backend does not supply one
const (
	msgFetchFailed       = "Unable to fetch weather data"
	msgCoordsFetchFailed = "Unable to fetch weather data for your location."
)

// ErrForecastUnavailable wraps every forecast failure. Forecast errors are
// never shown to the user.
var ErrForecastUnavailable = errors.New("forecast unavailable")

// HTTPError is returned when the backend answers with a non-2xx status
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// ParseError is returned when a response body is not the expected JSON
type ParseError struct {
	Field string // Missing required field, empty for malformed JSON
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parsing response: missing %s", e.Field)
	}
	return fmt.Sprintf("parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user for a current-weather failure
func Message(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return msgFetchFailed
}
