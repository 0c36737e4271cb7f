package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-info/internal/domain/entity"
	"weather-info/internal/domain/gateway/api"
	"weather-info/internal/domain/model"
	"weather-info/pkg/log"
	"weather-info/pkg/msg"
)

type weatherUseCase struct {
	delay      time.Duration
	apiGateway api.WeatherGateway
}

// NewWeatherUseCase creates a loader that waits delay before every fetch
func NewWeatherUseCase(delay time.Duration, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		delay:      delay,
		apiGateway: apiGateway,
	}
}

// Load waits the simulated latency, fetches the fixture and picks the weather for the descriptor
func (uc *weatherUseCase) Load(ctx context.Context, descriptor model.RequestDescriptor) (entity.WeatherData, error) {
	if descriptor.RequestState == model.RequestStateIdle || descriptor.RequestState == "" {
		return entity.WeatherData{}, ErrNoRequest
	}

	loadID := uuid.NewString()
	log.Debug(msg.GetMessage("weather.load-start", descriptor), zap.String("load_id", loadID))

	data, err := uc.load(ctx, descriptor)
	switch {
	case err == nil:
		log.Info(msg.GetMessage("weather.load-done", descriptor),
			zap.String("load_id", loadID),
			zap.Float64("temperature", data.Temperature),
			zap.String("condition", data.Condition))
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		log.Debug(msg.GetMessage("weather.load-cancelled", descriptor), zap.String("load_id", loadID))
	default:
		log.Warn(msg.GetMessage("weather.load-fail", descriptor, err), zap.String("load_id", loadID), zap.Error(err))
	}
	return data, err
}

func (uc *weatherUseCase) load(ctx context.Context, descriptor model.RequestDescriptor) (entity.WeatherData, error) {
	if err := uc.wait(ctx); err != nil {
		return entity.WeatherData{}, err
	}

	body, err := uc.fetch(ctx, descriptor.MultiCityMode)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.WeatherData{}, ctxErr
		}
		return entity.WeatherData{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	// Transport succeeded; the failure is an application-level one.
	if descriptor.RequestState == model.RequestStateSimulateError {
		return entity.WeatherData{}, ErrSimulated
	}

	if !descriptor.MultiCityMode {
		var data entity.WeatherData
		if err := json.Unmarshal(body, &data); err != nil {
			return entity.WeatherData{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return data, nil
	}

	var list []entity.WeatherData
	if err := json.Unmarshal(body, &list); err != nil {
		return entity.WeatherData{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return findCity(list, descriptor.SelectedCity)
}

// wait blocks for the simulated network latency unless ctx is cancelled first
func (uc *weatherUseCase) wait(ctx context.Context) error {
	if uc.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(uc.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (uc *weatherUseCase) fetch(ctx context.Context, multiCityMode bool) (json.RawMessage, error) {
	if multiCityMode {
		return uc.apiGateway.FetchMultiCity(ctx)
	}
	return uc.apiGateway.FetchSingleCity(ctx)
}

func findCity(list []entity.WeatherData, city entity.City) (entity.WeatherData, error) {
	for _, item := range list {
		if item.City == city {
			return item, nil
		}
	}
	return entity.WeatherData{}, fmt.Errorf("%w: %s", ErrNotFound, city)
}
