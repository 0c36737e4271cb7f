package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health of the whole application.
// Redis is only reported when publishing is enabled.
type HealthResponse struct {
	Status HealthStatus           `json:"status"`
	Widget ComponentHealthStatus  `json:"widget"`
	Redis  *ComponentHealthStatus `json:"redis,omitempty"`
}
