// Package env reads settings from environment variables that have no flag of their own.
package env

import (
	"os"
	"strings"
)

// NoColorEnvVar disables colors when set to any non-empty value, see https://no-color.org.
const NoColorEnvVar = "NO_COLOR"

// LookupEnv behaves the same as `os.LookupEnv`, but trims spaces and treats an empty value as not present.
func LookupEnv(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	val, ok := os.LookupEnv(key)
	val = strings.TrimSpace(val)

	return val, ok && val != ""
}

// NoColor reports whether NO_COLOR asks for colorless output.
func NoColor() bool {
	_, ok := LookupEnv(NoColorEnvVar)
	return ok
}
