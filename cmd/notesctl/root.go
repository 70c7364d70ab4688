package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Notes server command line interface",
	Long:  `notesctl manages the notes server: run it, migrate its database, and administer users.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// A .env file is optional. Environment variables already set win.
	_ = godotenv.Load()

	Execute()
}
