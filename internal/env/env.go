package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrConversionFailed = errors.New("failed to convert environment variable with key to value")

func errConversionFailed(key string, typeName string) error {
	return fmt.Errorf("key: %s type: %s: %w", key, typeName, ErrConversionFailed)
}

func GetStringOrDefault(key string, defaultVal string) string {
	if val, found := os.LookupEnv(key); found {
		return val
	}

	return defaultVal
}

func GetIntOrDefault(key string, defaultVal int) (int, error) {
	val, found := os.LookupEnv(key)
	if !found {
		return defaultVal, nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, errConversionFailed(key, "int")
	}

	return parsed, nil
}

func GetDurationOrDefault(key string, defaultVal time.Duration) (time.Duration, error) {
	val, found := os.LookupEnv(key)
	if !found {
		return defaultVal, nil
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		return 0, errConversionFailed(key, "time.Duration")
	}

	return parsed, nil
}
