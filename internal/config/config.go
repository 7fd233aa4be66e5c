package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/setly/teamdesk/internal/platform/logging"
)

// Config stores runtime configuration for a teamdesk installation.
type Config struct {
	// DataDir is where the embedded database lives.
	DataDir string
	// InMemory runs without disk persistence; state is lost on exit.
	InMemory bool
	// SeedDemo preloads new teams with onboarding content.
	SeedDemo bool
	LogLevel logging.Level
}

func Load() (Config, error) {
	logLevel, err := logging.ParseLevel(getEnv("TEAMDESK_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAMDESK_LOG_LEVEL: %w", err)
	}

	inMemory, err := getEnvAsBool("TEAMDESK_IN_MEMORY", false)
	if err != nil {
		return Config{}, err
	}

	seedDemo, err := getEnvAsBool("TEAMDESK_SEED_DEMO", true)
	if err != nil {
		return Config{}, err
	}

	dataDir := getEnv("TEAMDESK_DATA_DIR", "")
	if dataDir == "" && !inMemory {
		dataDir, err = defaultDataDir()
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		DataDir:  dataDir,
		InMemory: inMemory,
		SeedDemo: seedDemo,
		LogLevel: logLevel,
	}, nil
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	return filepath.Join(base, "teamdesk"), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, strconv.FormatBool(fallback))
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}
