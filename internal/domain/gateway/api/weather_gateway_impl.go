package api

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-info/assets"
	"weather-info/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	singlePath string
	multiPath  string
}

// NewWeatherGateway creates a WeatherGateway that reads the fixtures served under baseUrl
func NewWeatherGateway(baseUrl string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		singlePath: assets.SingleCityPath,
		multiPath:  assets.MultiCityPath,
	}
}

// FetchSingleCity gets the single-city payload
func (w *weatherGatewayImpl) FetchSingleCity(ctx context.Context) (json.RawMessage, error) {
	return w.fetch(ctx, w.singlePath)
}

// FetchMultiCity gets the multi-city payload
func (w *weatherGatewayImpl) FetchMultiCity(ctx context.Context) (json.RawMessage, error) {
	return w.fetch(ctx, w.multiPath)
}

// fetch returns the body unparsed; decoding is the caller's step
func (w *weatherGatewayImpl) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	var body []byte
	_, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		WithSuccessResp(&body).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	return json.RawMessage(body), nil
}
