package weatherinfo

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"weather-info/internal/domain/entity"
	"weather-info/internal/domain/gateway/event"
	"weather-info/internal/domain/model"
	"weather-info/internal/domain/usecase/weather"
	"weather-info/pkg/log"
	"weather-info/pkg/msg"
	"weather-info/pkg/reactive"
)

const (
	publishBuffer  = 32
	publishTimeout = 2 * time.Second
)

type weatherResource = reactive.Resource[model.RequestDescriptor, entity.WeatherData]

type weatherInfoUseCase struct {
	// actionMu serializes user actions so descriptors reach the resource in order
	actionMu sync.Mutex

	mu            sync.RWMutex
	requestState  model.RequestState
	multiCityMode bool
	selectedCity  entity.City

	resource            *weatherResource
	unsubscribeResource func()

	emitMu         sync.Mutex
	lastEmitted    *model.WeatherInfoState
	subscribers    map[uint64]func(model.WeatherInfoState)
	nextSubscriber uint64

	publisher   event.StatePublisher
	publishCh   chan model.WeatherInfoState
	publishDone chan struct{}
	closeOnce   sync.Once
}

// NewWeatherInfoUseCase creates an idle widget whose fetches go through weatherUseCase.
// Loads run under ctx; every distinct state is handed to publisher.
func NewWeatherInfoUseCase(ctx context.Context, weatherUseCase weather.UseCase, publisher event.StatePublisher) UseCase {
	if publisher == nil {
		publisher = event.NewNoopStatePublisher()
	}

	uc := &weatherInfoUseCase{
		requestState: model.RequestStateIdle,
		selectedCity: entity.DefaultCity(),
		subscribers:  make(map[uint64]func(model.WeatherInfoState)),
		publisher:    publisher,
		publishCh:    make(chan model.WeatherInfoState, publishBuffer),
		publishDone:  make(chan struct{}),
	}
	uc.resource = reactive.New[model.RequestDescriptor, entity.WeatherData](ctx, weatherUseCase.Load)
	uc.unsubscribeResource = uc.resource.Subscribe(func(reactive.Snapshot[model.RequestDescriptor, entity.WeatherData]) {
		uc.emit()
	})

	go uc.publishLoop(uc.publishCh)
	return uc
}

// State returns the current widget state
func (uc *weatherInfoUseCase) State() model.WeatherInfoState {
	uc.mu.RLock()
	state := model.WeatherInfoState{
		RequestState:  uc.requestState,
		MultiCityMode: uc.multiCityMode,
		SelectedCity:  uc.selectedCity,
		Cities:        entity.Cities(),
	}
	uc.mu.RUnlock()

	snapshot := uc.resource.Snapshot()
	state.Resource = model.ResourceState{
		Status:    snapshot.Status,
		IsLoading: snapshot.IsLoading(),
	}
	if snapshot.Err != nil {
		state.Resource.Error = errorMessage(snapshot.Err)
	}
	if snapshot.HasValue {
		value := snapshot.Value
		state.Resource.Value = &value
	}
	return state
}

// RequestWeather moves to ready, or reloads the current descriptor when already ready
func (uc *weatherInfoUseCase) RequestWeather() model.WeatherInfoState {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	alreadyReady := uc.requestState == model.RequestStateReady
	uc.requestState = model.RequestStateReady
	uc.mu.Unlock()

	if alreadyReady {
		// Setting the same state would not change the descriptor, so force it.
		log.Info(msg.GetMessage("weather-info.reload", uc.resource.Snapshot().Request))
		uc.resource.Reload()
	} else {
		log.Info(msg.GetMessage("weather-info.request", model.RequestStateReady))
		uc.syncRequest()
	}
	return uc.emit()
}

// Refresh reloads the current descriptor without touching the inputs
func (uc *weatherInfoUseCase) Refresh() (model.WeatherInfoState, bool) {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	if !uc.resource.Reload() {
		return uc.emit(), false
	}
	log.Info(msg.GetMessage("weather-info.refresh", uc.resource.Snapshot().Request))
	return uc.emit(), true
}

// RequestWeatherWithError switches to simulateError so the next fetch fails
func (uc *weatherInfoUseCase) RequestWeatherWithError() model.WeatherInfoState {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	uc.requestState = model.RequestStateSimulateError
	uc.mu.Unlock()

	log.Info(msg.GetMessage("weather-info.request-error"))
	uc.syncRequest()
	return uc.emit()
}

// ToggleMultiCity flips the multi-city mode
func (uc *weatherInfoUseCase) ToggleMultiCity() model.WeatherInfoState {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	uc.multiCityMode = !uc.multiCityMode
	enabled := uc.multiCityMode
	uc.mu.Unlock()

	log.Info(msg.GetMessage("weather-info.multi-city", enabled))
	uc.syncRequest()
	return uc.emit()
}

// SetMultiCity sets the multi-city mode explicitly
func (uc *weatherInfoUseCase) SetMultiCity(enabled bool) model.WeatherInfoState {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	changed := uc.multiCityMode != enabled
	uc.multiCityMode = enabled
	uc.mu.Unlock()

	if changed {
		log.Info(msg.GetMessage("weather-info.multi-city", enabled))
		uc.syncRequest()
	}
	return uc.emit()
}

// ToggleMultiCityAndRequest flips the mode and makes sure weather is requested,
// producing a single fetch for the new inputs
func (uc *weatherInfoUseCase) ToggleMultiCityAndRequest() model.WeatherInfoState {
	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	uc.requestState = model.RequestStateReady
	uc.multiCityMode = !uc.multiCityMode
	enabled := uc.multiCityMode
	uc.mu.Unlock()

	log.Info(msg.GetMessage("weather-info.multi-city", enabled))
	uc.syncRequest()
	return uc.emit()
}

// SelectCity changes the selected city; unknown names are rejected without side effects
func (uc *weatherInfoUseCase) SelectCity(name string) (model.WeatherInfoState, error) {
	city, err := entity.ParseCity(name)
	if err != nil {
		return uc.State(), err
	}

	uc.actionMu.Lock()
	defer uc.actionMu.Unlock()

	uc.mu.Lock()
	changed := uc.selectedCity != city
	uc.selectedCity = city
	uc.mu.Unlock()

	if changed {
		log.Info(msg.GetMessage("weather-info.select-city", city))
		uc.syncRequest()
	}
	return uc.emit(), nil
}

// Subscribe registers fn for every distinct state
func (uc *weatherInfoUseCase) Subscribe(fn func(model.WeatherInfoState)) func() {
	uc.emitMu.Lock()
	id := uc.nextSubscriber
	uc.nextSubscriber++
	uc.subscribers[id] = fn
	uc.emitMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			uc.emitMu.Lock()
			delete(uc.subscribers, id)
			uc.emitMu.Unlock()
		})
	}
}

// Close cancels the pending fetch and flushes the publisher
func (uc *weatherInfoUseCase) Close() {
	uc.closeOnce.Do(func() {
		uc.unsubscribeResource()
		uc.resource.Close()

		uc.emitMu.Lock()
		close(uc.publishCh)
		uc.publishCh = nil
		uc.emitMu.Unlock()

		<-uc.publishDone
	})
}

// syncRequest derives the descriptor from the inputs and hands it to the resource.
// Caller must hold actionMu.
func (uc *weatherInfoUseCase) syncRequest() {
	uc.mu.RLock()
	descriptor, ok := model.Describe(uc.requestState, uc.multiCityMode, uc.selectedCity)
	uc.mu.RUnlock()

	if !ok {
		uc.resource.ClearRequest()
		return
	}
	uc.resource.SetRequest(descriptor)
}

// emit hands the current state to subscribers and the publisher unless it equals the last one sent
func (uc *weatherInfoUseCase) emit() model.WeatherInfoState {
	uc.emitMu.Lock()
	defer uc.emitMu.Unlock()

	state := uc.State()
	if uc.lastEmitted != nil && reflect.DeepEqual(*uc.lastEmitted, state) {
		return state
	}
	uc.lastEmitted = &state

	for _, fn := range uc.subscribers {
		fn(state)
	}

	if uc.publishCh != nil {
		select {
		case uc.publishCh <- state:
		default:
			log.Warn(msg.GetMessage("weather-info.publish-fail", "publish buffer full"))
		}
	}
	return state
}

func (uc *weatherInfoUseCase) publishLoop(states <-chan model.WeatherInfoState) {
	defer close(uc.publishDone)

	for state := range states {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := uc.publisher.Publish(ctx, state); err != nil {
			log.Warn(msg.GetMessage("weather-info.publish-fail", err), zap.Error(err))
		}
		cancel()
	}
}

// errorMessage turns a load failure into the plain message shown to the user
func errorMessage(err error) string {
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return msg.GetMessage("error.not-found")
	case errors.Is(err, weather.ErrSimulated):
		return msg.GetMessage("error.simulated")
	case errors.Is(err, weather.ErrFetch):
		return msg.GetMessage("error.fetch")
	case errors.Is(err, weather.ErrDecode):
		return msg.GetMessage("error.decode")
	default:
		return msg.GetMessage("error.unknown")
	}
}
