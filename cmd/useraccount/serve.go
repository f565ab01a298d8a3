package main

import (
	"github.com/spf13/cobra"

	"user-account-api/internal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default command)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := internal.NewApp(cmd.Context(), logger, cfg)
	if err != nil {
		_ = logger.Sync()
		return err
	}
	defer app.Close()

	app.InitControllers()

	return app.Run(cmd.Context())
}
