package model

import (
	"weather-info/internal/domain/entity"
	"weather-info/pkg/reactive"
)

// WeatherInfoState is everything the view needs to render the widget.
type WeatherInfoState struct {
	RequestState  RequestState  `json:"requestState"`
	MultiCityMode bool          `json:"multiCityMode"`
	SelectedCity  entity.City   `json:"selectedCity"`
	Cities        []entity.City `json:"cities"`
	Resource      ResourceState `json:"resource"`
}

// ResourceState is the loading/error/value triple shown by the view.
// At most one of IsLoading, Error and Value drives what is displayed.
type ResourceState struct {
	Status    reactive.Status     `json:"status"`
	IsLoading bool                `json:"isLoading"`
	Error     string              `json:"error,omitempty"`
	Value     *entity.WeatherData `json:"value,omitempty"`
}

// SelectCityDTO is the body of a city selection request.
type SelectCityDTO struct {
	City string `json:"city" validate:"required"`
}

// MultiCityDTO is the body of an explicit multi-city mode change.
type MultiCityDTO struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
