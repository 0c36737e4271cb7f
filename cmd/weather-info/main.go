package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-info/assets"
	"weather-info/configs"
	"weather-info/docs"
	"weather-info/internal/application/controller"
	"weather-info/internal/application/middleware"
	"weather-info/internal/application/schedule"
	"weather-info/internal/domain/gateway/api"
	"weather-info/internal/domain/gateway/event"
	"weather-info/internal/domain/usecase/health"
	"weather-info/internal/domain/usecase/weather"
	"weather-info/internal/domain/usecase/weatherinfo"
	httpclient "weather-info/pkg/http"
	"weather-info/pkg/log"
	"weather-info/pkg/msg"
	"weather-info/pkg/redis"
	"weather-info/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title weather-info API
// @version 1.0
// @description Weather widget controller: request weather, toggle multi-city mode, select a city and follow the loading/error/value state.
// @BasePath /weather-info-api
func main() {
	defer log.Sync()

	if err := log.SetLevel(resource.GetString("app.log.level")); err != nil {
		log.Warn(err.Error())
	}
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	// Requests inherit ctx so open event streams end on shutdown.
	e.Server.BaseContext = func(net.Listener) context.Context { return ctx }
	middleware.SetupRequestLogger(e)
	e.StaticFS("/assets", assets.FS)
	contextPath := resource.GetString("app.server.context-path")
	apiGroup := e.Group(contextPath)

	docs.SwaggerInfo.BasePath = contextPath
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(resource.GetString("app.weather.base-url"), httpclient.ClientOptions{
		ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
		ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
		Logger:            httpclient.NewZapLogger(),
	})
	statePublisher, redisClient := newStatePublisher(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(resource.GetDuration("app.weather.delay"), weatherGateway)
	weatherInfoUseCase := weatherinfo.NewWeatherInfoUseCase(ctx, weatherUseCase, statePublisher)
	healthUseCase := health.NewHealthUseCase(weatherInfoUseCase, statePublisher)

	// Init Controller
	healthController := controller.NewHealthController(e.Group(""), healthUseCase)
	weatherInfoController := controller.NewWeatherInfoController(apiGroup, weatherInfoUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherInfoController.InitWeatherInfoRoutes()

	// Init Schedule
	weatherInfoScheduler := schedule.NewWeatherInfoScheduler(weatherInfoUseCase, resource.GetString("app.weather.refresh-cron"))
	if err := weatherInfoScheduler.InitWeatherInfoScheduleTasks(); err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.shutdown-fail", err), zap.Error(err))
	}
	weatherInfoScheduler.Stop()
	weatherInfoUseCase.Close()
	log.Info(msg.GetMessage("weather-info.closed"))
}

// newStatePublisher connects to redis when enabled. A nil publisher means
// publishing is off and redis is left out of the health report.
func newStatePublisher(ctx context.Context) (event.StatePublisher, *redis.Client) {
	if !resource.GetBool("app.redis.enabled") {
		log.Info(msg.GetMessage("app.redis-disabled"))
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Warn(msg.GetMessage("app.redis-unavailable", config.Addr(), err), zap.Error(err))
		return nil, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		// Keep publishing anyway, the health endpoint reports the outage.
		log.Warn(msg.GetMessage("app.redis-unavailable", config.Addr(), err), zap.Error(err))
	}

	namespace := resource.GetString("app.redis.channel-namespace")
	channel := resource.GetString("app.redis.channel")
	log.Info(msg.GetMessage("app.redis-connected", redis.NewPublisher(client, namespace).ChannelName(channel)))
	return event.NewRedisStatePublisher(client, namespace, channel), client
}
