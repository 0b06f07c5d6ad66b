package util

import (
	"os"
	"strconv"
	"strings"
)

const EnvironmentPrefix = "TRAVIGO_"

// GetEnvironmentVariable reads TRAVIGO_<name>, returning fallback when it is unset or empty.
func GetEnvironmentVariable(name string, fallback string) string {
	if value := os.Getenv(EnvironmentPrefix + name); value != "" {
		return value
	}

	return fallback
}

func GetEnvironmentInt(name string, fallback int) (int, error) {
	value := os.Getenv(EnvironmentPrefix + name)
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func GetEnvironmentFlag(name string) bool {
	return strings.EqualFold(os.Getenv(EnvironmentPrefix+name), "YES")
}
