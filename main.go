package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// DataFilePath resolves the data file location: METRON_DATA_FILE wins,
// otherwise the file lives under the user's local share directory.
func DataFilePath() string {
	if path := os.Getenv("METRON_DATA_FILE"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "metron", "data.json")
}

func main() {
	// a .env in the working directory can pin METRON_DATA_FILE per project
	godotenv.Load()

	app := NewApp()
	rootCmd := SetupCommands(app)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %v", err))
		os.Exit(1)
	}
}
