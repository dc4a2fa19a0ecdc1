// Package cmd provides command-line interface functionality for SaturnTools.
// SaturnTools is a collection of utilities for inspecting Sega Saturn disc
// images and reporting peripheral compatibility codes.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the SaturnTools application.
var rootCmd = &cobra.Command{
	Use:   "saturntools",
	Short: "Tools for inspecting Sega Saturn disc images",
	Long: `SaturnTools - A collection of utilities for inspecting Sega Saturn
disc images (.iso, .bin) and reporting the peripheral compatibility codes
stored in the System ID (IP.BIN) header.

Currently supports:
  - Scanning disc images for the Saturn System ID header
  - Decoding game title, version, product number and area codes
  - Decoding the peripheral support field into human-readable devices
  - Listing the official Sega peripheral code reference table

Examples:
  saturntools scan game.iso
  saturntools scan /path/to/games/
  saturntools scan -v --no-recurse /path/to/games/
  saturntools scan -o report.txt game1.bin game2.iso
  saturntools codes

Use 'saturntools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
