// Package config reads typed values from the environment and validates
// them. Invalid values fall back to the default with a warning so a typo
// never takes the dashboard down; required values are checked by the
// caller.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the trimmed value of key, or defaultValue when unset
// or blank.
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt parses key as a base-10 integer.
func GetEnvInt(key string, defaultValue int) int {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		warnInvalid(key, raw, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvFloat parses key as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		warnInvalid(key, raw, strconv.FormatFloat(defaultValue, 'g', -1, 64), err)
		return defaultValue
	}
	return value
}

// GetEnvBool accepts the forms strconv.ParseBool does ("1", "true", "F", ...).
func GetEnvBool(key string, defaultValue bool) bool {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		warnInvalid(key, raw, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration parses key with time.ParseDuration ("30s", "5m").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		warnInvalid(key, raw, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

// GetEnvStringList splits key on commas, trims each part and drops empty
// parts. An empty result yields defaultValue.
func GetEnvStringList(key string, defaultValue []string) []string {
	raw := GetEnvString(key, "")
	if raw == "" {
		return defaultValue
	}
	var result []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

func warnInvalid(key, value, fallback string, err error) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", fallback),
		slog.String("error", err.Error()))
}
