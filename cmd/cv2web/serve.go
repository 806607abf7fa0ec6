package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitzanshifris/cv2web/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for component selection and content adaptation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appCfg, err := loadAppConfig(serveConfig)
	if err != nil {
		return err
	}

	port := servePort
	if appCfg.Port != 0 {
		port = appCfg.Port
	}

	// DATABASE_URL is optional; without it runs are not persisted
	databaseURL := appCfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	cfg := server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		Selection:   appCfg.SelectionConfig(),
		Logger:      newLogger(appCfg.Verbose),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
