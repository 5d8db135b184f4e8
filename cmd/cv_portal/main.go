// Package main provides the entry point for the CV Portal HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_portal",
	Short: "CV Portal HTTP API Server",
	Long:  "CV Portal manages employee CVs and derives localized preview view-models shared by the on-screen preview and the PDF export.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
