package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/classconnect/classconnect-go/internal/app/services"
	"github.com/classconnect/classconnect-go/internal/config"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

func main() {
	// A missing .env is fine; real deployments configure the environment.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	cli := &commandLine{app: services.NewApp(cfg)}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error().Err(err).Msg("Command failed")
		}
		os.Exit(1)
	}
}

func configPath() string {
	if path := os.Getenv("CC_CONFIG"); path != "" {
		return path
	}
	return "classconnect.yaml"
}
