// Package assets embeds the static weather fixtures served under /assets.
package assets

import "embed"

const (
	// SingleCityPath is the fixture holding a single weather object.
	SingleCityPath = "assets/weather.json"
	// MultiCityPath is the fixture holding one weather object per city.
	MultiCityPath = "assets/weather-multi.json"
)

//go:embed weather.json weather-multi.json
var FS embed.FS
