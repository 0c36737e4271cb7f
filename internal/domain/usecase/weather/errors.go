package weather

import "errors"

var (
	// ErrNoRequest is returned when Load is called with an idle descriptor.
	ErrNoRequest = errors.New("no weather request")
	// ErrFetch is returned when the fixture could not be fetched.
	ErrFetch = errors.New("could not fetch data")
	// ErrSimulated is returned for every fetch made in the simulateError state.
	ErrSimulated = errors.New("something went wrong")
	// ErrNotFound is returned when the multi-city payload has no entry for the selected city.
	ErrNotFound = errors.New("weather info not found")
	// ErrDecode is returned when the payload is not valid weather data.
	ErrDecode = errors.New("could not decode weather data")
)
