package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-info/internal/domain/entity"
	"weather-info/internal/domain/model"
	"weather-info/internal/domain/usecase/weatherinfo"
	"weather-info/pkg/log"
	"weather-info/pkg/msg"
	"weather-info/pkg/sse"
)

const (
	eventBuffer       = 16
	keepAliveInterval = 15 * time.Second
)

type WeatherInfoController struct {
	api     *echo.Group
	useCase weatherinfo.UseCase
}

func NewWeatherInfoController(api *echo.Group, useCase weatherinfo.UseCase) *WeatherInfoController {
	return &WeatherInfoController{api: api, useCase: useCase}
}

// InitWeatherInfoRoutes initializes weather widget routes
func (controller *WeatherInfoController) InitWeatherInfoRoutes() {
	controller.api.GET("/weather-info", controller.GetState)
	controller.api.GET("/weather-info/events", controller.StreamState)
	controller.api.POST("/weather-info/request", controller.RequestWeather)
	controller.api.POST("/weather-info/request-error", controller.RequestWeatherWithError)
	controller.api.POST("/weather-info/multi-city/toggle", controller.ToggleMultiCity)
	controller.api.PUT("/weather-info/multi-city", controller.SetMultiCity)
	controller.api.PUT("/weather-info/city", controller.SelectCity)
}

// GetState godoc
// @Summary Get widget state
// @Description Retrieve the request state, the inputs and the loading/error/value of the widget
// @Tags weather-info
// @Produce json
// @Success 200 {object} model.WeatherInfoState "Current widget state"
// @Router /weather-info [get]
func (controller *WeatherInfoController) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.State())
}

// RequestWeather godoc
// @Summary Request weather
// @Description Start fetching weather, or reload it with the same inputs when already requested
// @Tags weather-info
// @Produce json
// @Success 202 {object} model.WeatherInfoState "Widget state right after the request"
// @Router /weather-info/request [post]
func (controller *WeatherInfoController) RequestWeather(c echo.Context) error {
	return c.JSON(http.StatusAccepted, controller.useCase.RequestWeather())
}

// RequestWeatherWithError godoc
// @Summary Request weather with a simulated error
// @Description Make the next fetch fail with a simulated error
// @Tags weather-info
// @Produce json
// @Success 202 {object} model.WeatherInfoState "Widget state right after the request"
// @Router /weather-info/request-error [post]
func (controller *WeatherInfoController) RequestWeatherWithError(c echo.Context) error {
	return c.JSON(http.StatusAccepted, controller.useCase.RequestWeatherWithError())
}

// ToggleMultiCity godoc
// @Summary Toggle multi-city mode
// @Description Flip between single-city and multi-city mode. With request=true weather is requested in the same step.
// @Tags weather-info
// @Produce json
// @Param request query bool false "Also request weather" default(false)
// @Success 200 {object} model.WeatherInfoState "Widget state after the toggle"
// @Failure 400 {object} map[string]string "Invalid request parameter"
// @Router /weather-info/multi-city/toggle [post]
func (controller *WeatherInfoController) ToggleMultiCity(c echo.Context) error {
	request := false
	if value := c.QueryParam("request"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "request must be a boolean"})
		}
		request = parsed
	}

	if request {
		return c.JSON(http.StatusOK, controller.useCase.ToggleMultiCityAndRequest())
	}
	return c.JSON(http.StatusOK, controller.useCase.ToggleMultiCity())
}

// SetMultiCity godoc
// @Summary Set multi-city mode
// @Description Enable or disable multi-city mode
// @Tags weather-info
// @Accept json
// @Produce json
// @Param body body model.MultiCityDTO true "Multi-city mode"
// @Success 200 {object} model.WeatherInfoState "Widget state after the change"
// @Failure 400 {object} map[string]string "Invalid request body or missing required fields"
// @Router /weather-info/multi-city [put]
func (controller *WeatherInfoController) SetMultiCity(c echo.Context) error {
	var dto model.MultiCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if dto.Enabled == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "enabled is required"})
	}
	return c.JSON(http.StatusOK, controller.useCase.SetMultiCity(*dto.Enabled))
}

// SelectCity godoc
// @Summary Select city
// @Description Change the city used in multi-city mode
// @Tags weather-info
// @Accept json
// @Produce json
// @Param body body model.SelectCityDTO true "City to select"
// @Success 200 {object} model.WeatherInfoState "Widget state after the selection"
// @Failure 400 {object} map[string]string "Invalid request body or unknown city"
// @Router /weather-info/city [put]
func (controller *WeatherInfoController) SelectCity(c echo.Context) error {
	var dto model.SelectCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if dto.City == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "city is required"})
	}

	state, err := controller.useCase.SelectCity(dto.City)
	if errors.Is(err, entity.ErrUnknownCity) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, state)
}

// StreamState godoc
// @Summary Stream widget state
// @Description Server-sent events: the current state first, then one "state" event per change
// @Tags weather-info
// @Produce text/event-stream
// @Success 200 {object} model.WeatherInfoState "Stream of widget states"
// @Router /weather-info/events [get]
func (controller *WeatherInfoController) StreamState(c echo.Context) error {
	states := make(chan model.WeatherInfoState, eventBuffer)
	unsubscribe := controller.useCase.Subscribe(func(state model.WeatherInfoState) {
		// Called while the widget emits, so it must not block. States are
		// full snapshots, dropping the oldest one loses nothing the view needs.
		for {
			select {
			case states <- state:
				return
			default:
			}
			select {
			case <-states:
			default:
			}
		}
	})
	defer unsubscribe()

	w := c.Response()
	flusher := sse.Prepare(w)
	w.WriteHeader(http.StatusOK)

	last := controller.useCase.State()
	if err := sse.WriteEvent(w, flusher, "state", last); err != nil {
		return nil
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := sse.WriteComment(w, flusher, "keep-alive"); err != nil {
				return nil
			}
		case state := <-states:
			if reflect.DeepEqual(state, last) {
				continue
			}
			last = state
			if err := sse.WriteEvent(w, flusher, "state", state); err != nil {
				log.Debug(msg.GetMessage("weather-info.stream-closed", err), zap.Error(err))
				return nil
			}
		}
	}
}
