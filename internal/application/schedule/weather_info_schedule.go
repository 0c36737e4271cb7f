package schedule

import (
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-info/internal/domain/usecase/weatherinfo"
	"weather-info/pkg/log"
	"weather-info/pkg/msg"
)

// WeatherInfoScheduler reloads the widget's weather on a cron expression
type WeatherInfoScheduler struct {
	cron           *cron.Cron
	useCase        weatherinfo.UseCase
	cronExpression string
}

// NewWeatherInfoScheduler creates a scheduler. An empty cronExpression disables it.
func NewWeatherInfoScheduler(useCase weatherinfo.UseCase, cronExpression string) *WeatherInfoScheduler {
	return &WeatherInfoScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
	}
}

// InitWeatherInfoScheduleTasks registers the refresh task and starts the scheduler
func (s *WeatherInfoScheduler) InitWeatherInfoScheduleTasks() error {
	if s.cronExpression == "" {
		log.Info(msg.GetMessage("app.schedule-disabled"))
		return nil
	}

	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("app.schedule-fail", err), zap.Error(err))
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("app.schedule-started", s.cronExpression))
	return nil
}

// ExecuteScheduledTask reloads the current request, if weather was ever requested
func (s *WeatherInfoScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	if _, refreshed := s.useCase.Refresh(); !refreshed {
		log.Debug(msg.GetMessage("app.schedule-skipped"), zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler
func (s *WeatherInfoScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		log.Info(msg.GetMessage("app.schedule-stopped"))
	}
}
