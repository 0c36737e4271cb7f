package api

import (
	"context"
	"encoding/json"
)

// WeatherGateway fetches the static weather fixtures.
// Bodies are returned undecoded so callers decide when to parse them.
type WeatherGateway interface {
	// FetchSingleCity gets the single-city payload
	FetchSingleCity(ctx context.Context) (json.RawMessage, error)

	// FetchMultiCity gets the payload holding one entry per city
	FetchMultiCity(ctx context.Context) (json.RawMessage, error)
}
