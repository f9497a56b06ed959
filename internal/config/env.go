package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// GetEnv returns the trimmed value of key, or fallback when it is unset or
// blank.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("invalid integer override", "env", key, "value", raw)
		return fallback
	}
	return parsed
}
