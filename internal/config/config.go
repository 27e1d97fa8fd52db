package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or its parent. BORDEROU_* variables then override
// config-file values through viper's automatic env binding.
func LoadEnv(logger *logrus.Logger) {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			if logger != nil {
				logger.Warnf("Error loading .env file: %v", err)
			}
			return
		}
		if logger != nil {
			logger.Infof("Loaded environment variables from %s", envFile)
		}
	})
}
