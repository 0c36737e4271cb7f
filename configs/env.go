package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	ContextPath        string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	// A missing .env is fine, real environment variables still apply.
	_ = godotenv.Load()
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "weather-info"),
		ContextPath:        getStringOrDefault("CONTEXT_PATH", "/weather-info-api"),
		PropertiesFilePath: getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFilePath:   getStringOrDefault("MESSAGES_FILE_PATH", "configs/messages.yml"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
