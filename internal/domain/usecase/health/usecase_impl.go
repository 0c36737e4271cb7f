package health

import (
	"context"

	"weather-info/internal/domain/gateway/event"
	"weather-info/internal/domain/model"
	"weather-info/internal/domain/usecase/weatherinfo"
)

type healthUseCase struct {
	widget    weatherinfo.UseCase
	publisher event.StatePublisher
}

// NewHealthUseCase reports the widget and, when publisher is not nil, the state publisher
func NewHealthUseCase(widget weatherinfo.UseCase, publisher event.StatePublisher) UseCase {
	return &healthUseCase{
		widget:    widget,
		publisher: publisher,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	state := useCase.widget.State()
	widgetHealth := model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"requestState": string(state.RequestState),
			"resource":     state.Resource.Status.String(),
		},
	}

	response := model.HealthResponse{
		Status: model.StatusUp,
		Widget: widgetHealth,
	}

	if useCase.publisher != nil {
		publisherHealth := useCase.publisher.Health(ctx)
		response.Redis = &publisherHealth
		if publisherHealth.Status != model.StatusUp {
			response.Status = model.StatusDown
		}
	}
	return response
}
