package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	properties = viper.New()
	loadOnce   sync.Once
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// load reads the properties file the first time a property is requested.
// PROPERTIES_FILE_PATH overrides the default location.
func load() {
	loadOnce.Do(func() {
		path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
		if !ok {
			path = defaultPropertiesPath
		}
		if err := Init(path); err != nil {
			log.Printf("Fail to read properties, using defaults only: %v", err)
		}
	})
}

// Init loads application properties from the YAML file at filepath,
// resolving ${ENV:default} placeholders against the environment.
func Init(filepath string) error {
	source := viper.New()
	source.SetConfigFile(filepath)
	source.SetConfigType("yml")

	if err := source.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", source.AllSettings(), resolved)

	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value; other strings are returned as-is
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	load()
	return properties.Get(key)
}

func GetString(key string) string {
	load()
	return properties.GetString(key)
}

func GetBool(key string) bool {
	load()
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	load()
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	load()
	return properties.GetInt(key)
}
