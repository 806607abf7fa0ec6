// Package main provides the cv2web CLI: it maps parsed CV data onto portfolio
// UI components, as a batch tool or an HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv2web",
	Short: "CV to portfolio component mapper",
	Long:  "cv2web selects UI components for each section of a parsed CV and adapts the section content into component props, ready for portfolio site generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
