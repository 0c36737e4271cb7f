package reactive

import "fmt"

// Status is the lifecycle stage of a Resource.
type Status int

const (
	// StatusIdle means there is no request, so nothing is loaded.
	StatusIdle Status = iota
	// StatusLoading means a load for a new request is in flight.
	StatusLoading
	// StatusReloading means the current request is being loaded again while the previous value is kept.
	StatusReloading
	// StatusResolved means the last load returned a value.
	StatusResolved
	// StatusError means the last load failed.
	StatusError
)

var statusNames = map[Status]string{
	StatusIdle:      "idle",
	StatusLoading:   "loading",
	StatusReloading: "reloading",
	StatusResolved:  "resolved",
	StatusError:     "error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// IsLoading reports whether a load is in flight.
func (s Status) IsLoading() bool {
	return s == StatusLoading || s == StatusReloading
}
