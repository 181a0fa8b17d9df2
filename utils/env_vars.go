package utils

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv reads an environment variable, falling back to defaultValue when it
// is unset or empty. The type parameter drives the parsing.
func GetEnv[T bool | int | string](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		panic(err)
	}
	return parsed
}

// GetRequiredEnv is GetEnv without a fallback: it panics at startup when the
// variable is missing, we would rather crash than run misconfigured.
func GetRequiredEnv[T bool | int | string](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		panic(fmt.Sprintf("%s environment variable is required", envVar))
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		panic(err)
	}
	return parsed
}

func parseEnv[T bool | int | string](envVar, envValue string) (T, error) {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: '%s' is not an integer", envVar, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return out, fmt.Errorf("environment variable %s: '%s' is not a boolean", envVar, envValue)
		}
		*ptr = boolValue
	}
	return out, nil
}
