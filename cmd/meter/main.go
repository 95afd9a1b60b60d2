// Package main is the entry point for the interactive terminal meter.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/password-meter/backend/config"
	"github.com/password-meter/backend/internal/integration/cli"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	os.Exit(cli.Execute(config.Load()))
}
