package config

import (
	"os"
	"strings"
)

const defaultPort = ":8080"

func BasePath() string {
	return strings.TrimSuffix(os.Getenv("APP_BASE_PATH"), "/")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	if !strings.Contains(port, ":") {
		port = ":" + port
	}
	return port
}

// LogFile is where the game engine log is rotated to. Empty means stderr only.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}

// Development is on when DEVELOPMENT is set to anything but "0" or "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	switch strings.ToLower(development) {
	case "0", "false":
		return false
	default:
		return true
	}
}
