package model

// RequestState tells whether and how the widget should fetch.
type RequestState string

const (
	// RequestStateIdle means no request was ever made.
	RequestStateIdle RequestState = "idle"
	// RequestStateReady means a normal fetch should occur.
	RequestStateReady RequestState = "ready"
	// RequestStateSimulateError means the next fetch must fail on purpose.
	RequestStateSimulateError RequestState = "simulateError"
)
