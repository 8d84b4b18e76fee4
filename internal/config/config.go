package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var once sync.Once

// LoadEnv loads a .env file from the working directory or its parent, if
// one exists. Variables already set in the environment win.
func LoadEnv() {
	once.Do(func() {
		for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
			if _, err := os.Stat(envFile); err != nil {
				continue
			}
			if err := godotenv.Load(envFile); err != nil {
				logrus.Warnf("Error loading %s file: %v", envFile, err)
			}
			return
		}
	})
}

// GetEnv returns the value of key, or fallback when unset or blank
func GetEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// ConfigureGlobalLogging sets the level of the standard logrus logger from
// LOG_LEVEL, falling back to info.
func ConfigureGlobalLogging() {
	level, err := logrus.ParseLevel(strings.ToLower(GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using 'info'", os.Getenv("LOG_LEVEL"))
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
