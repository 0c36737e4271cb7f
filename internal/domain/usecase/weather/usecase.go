package weather

import (
	"context"

	"weather-info/internal/domain/entity"
	"weather-info/internal/domain/model"
)

type UseCase interface {
	// Load waits the simulated latency, fetches the fixture selected by the
	// descriptor and returns the matching weather. Cancelling ctx aborts both
	// the wait and the fetch.
	Load(ctx context.Context, descriptor model.RequestDescriptor) (entity.WeatherData, error)
}
