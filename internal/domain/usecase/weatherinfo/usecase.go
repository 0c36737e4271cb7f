package weatherinfo

import "weather-info/internal/domain/model"

// UseCase is the weather widget controller. Every action returns the state
// the view should render right after it.
type UseCase interface {
	// State returns the current widget state
	State() model.WeatherInfoState

	// RequestWeather starts fetching, or forces a reload with unchanged inputs when already requested
	RequestWeather() model.WeatherInfoState

	// Refresh reloads the current request; it reports false and does nothing while idle
	Refresh() (model.WeatherInfoState, bool)

	// RequestWeatherWithError makes the next fetch fail on purpose
	RequestWeatherWithError() model.WeatherInfoState

	// ToggleMultiCity flips between single-city and multi-city mode
	ToggleMultiCity() model.WeatherInfoState

	// SetMultiCity sets the multi-city mode, doing nothing when it is already set
	SetMultiCity(enabled bool) model.WeatherInfoState

	// ToggleMultiCityAndRequest flips the mode and requests weather in one step
	ToggleMultiCityAndRequest() model.WeatherInfoState

	// SelectCity changes the city used in multi-city mode
	SelectCity(name string) (model.WeatherInfoState, error)

	// Subscribe registers fn to receive every distinct state; the returned function unsubscribes
	Subscribe(fn func(model.WeatherInfoState)) func()

	// Close cancels the pending fetch and stops publishing
	Close()
}
