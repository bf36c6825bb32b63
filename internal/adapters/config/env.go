package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv treats unset and blank variables the same.
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func getStringEnv(key string, defaultValue string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getDurationEnv reads an integer count of unit, e.g. seconds.
func getDurationEnv(key string, unit time.Duration, defaultValue int) time.Duration {
	value := getIntEnv(key, defaultValue)
	if value < 0 {
		value = defaultValue
	}
	return time.Duration(value) * unit
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
