package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Andrew-0807/ExcelProcessor/cmd/clean"
	"github.com/Andrew-0807/ExcelProcessor/cmd/convert"
	"github.com/Andrew-0807/ExcelProcessor/cmd/pipeline"
	"github.com/Andrew-0807/ExcelProcessor/cmd/root"
	"github.com/Andrew-0807/ExcelProcessor/cmd/transform"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly before any logging happens
	configureLogLevelDirectly()

	// 3. Now that logging is configured, initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(clean.Cmd)
	root.Cmd.AddCommand(transform.Cmd)
	root.Cmd.AddCommand(pipeline.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances from the BORDEROU_LOG_LEVEL environment variable
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("BORDEROU_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
