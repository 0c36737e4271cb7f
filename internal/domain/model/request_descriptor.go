package model

import (
	"fmt"

	"weather-info/internal/domain/entity"
)

// RequestDescriptor is the snapshot of inputs that decides what to fetch.
// It is comparable, so an unchanged descriptor never triggers a new fetch.
type RequestDescriptor struct {
	RequestState  RequestState `json:"requestState"`
	MultiCityMode bool         `json:"multiCityMode"`
	SelectedCity  entity.City  `json:"selectedCity"`
}

// Describe derives the descriptor from the widget inputs. It reports false
// while the state is idle, which suppresses fetching.
func Describe(state RequestState, multiCityMode bool, selectedCity entity.City) (RequestDescriptor, bool) {
	if state == RequestStateIdle || state == "" {
		return RequestDescriptor{}, false
	}
	return RequestDescriptor{
		RequestState:  state,
		MultiCityMode: multiCityMode,
		SelectedCity:  selectedCity,
	}, true
}

func (d RequestDescriptor) String() string {
	if d.MultiCityMode {
		return fmt.Sprintf("multi-city/%s (%s)", d.SelectedCity, d.RequestState)
	}
	return fmt.Sprintf("single-city (%s)", d.RequestState)
}
