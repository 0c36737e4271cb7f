package entity

// WeatherData is one weather reading as served by the fixtures.
// City is only present in the multi-city payload.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	City        City    `json:"city,omitempty"`
}
