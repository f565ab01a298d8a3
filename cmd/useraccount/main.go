package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"user-account-api/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "useraccount",
	Short:         "User account service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "useraccount: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	var logger *zap.Logger
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("cannot initialize zap logger: %w", err)
	}

	return cfg, logger, nil
}
