// Package main provides the entry point for the rolewatch page monitor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolewatch",
	Short: "Monitor a published role-listing page for updates",
	Long:  "rolewatch checks a role-listing page for changes since the last run, persists the latest combined table contents, and emails an alert when the page was updated.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
