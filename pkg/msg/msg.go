package msg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const defaultMessagesPath = "configs/messages.yml"

var (
	messages = make(map[string]string)
	mu       sync.RWMutex
	loadOnce sync.Once
)

// load reads the messages file on first use. MESSAGES_FILE_PATH overrides
// the default location.
func load() {
	loadOnce.Do(func() {
		path, ok := os.LookupEnv("MESSAGES_FILE_PATH")
		if !ok {
			path = defaultMessagesPath
		}
		if err := Init(path); err != nil {
			log.Printf("Fail to read messages: %v", err)
		}
	})
}

// Init loads messages from the YAML file at filepath and merges them into
// the catalogue.
func Init(filepath string) error {
	source := viper.New()
	source.SetConfigFile(filepath)
	source.SetConfigType("yml")

	if err := source.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read messages %s: %w", filepath, err)
	}

	parsed := make(map[string]string)
	parseMessageMap("", source.AllSettings(), parsed)

	mu.Lock()
	defer mu.Unlock()
	for key, value := range parsed {
		messages[key] = value
	}
	return nil
}

// parseMessageMap reads the yml tree recursively into dotted keys
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args
func GetMessage(key string, args ...interface{}) string {
	load()

	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		message = strings.ReplaceAll(message, placeholder, argToString(arg))
	}

	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

// isPrimitive checks if the provided value is of a primitive kind (bool, int, uint, float, or string).
func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString converts a primitive value to string using strconv
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
