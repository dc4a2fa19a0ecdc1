// Package cmd provides command-line interface for disc image scanning.
// This file contains the scan command, which inspects Saturn disc images
// and reports their peripheral compatibility codes.
package cmd

import (
	"fmt"
	"os"

	"github.com/hansbonini/saturntools/pkg"
	"github.com/hansbonini/saturntools/pkg/common"
	"github.com/spf13/cobra"
)

// scanCmd scans disc image files and directories for Saturn headers.
// It locates the System ID header, decodes the peripheral support field
// and prints an aligned report, optionally writing it to a file.
var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan Saturn disc images for peripheral codes",
	Long: `Scan Sega Saturn disc images for peripheral compatibility codes.

This command reads the first sectors of each .iso or .bin file, locates the
Saturn System ID header and decodes its fields:
  - Game title, version, product number and area codes
  - Peripheral support codes with human-readable device names

Directories are scanned recursively by default; files with other extensions
and files without a Saturn header are reported as skipped.

Output:
  - Aligned report table on the console
  - Optional report file (-o) with a peripheral code reference preamble
  - Optional YAML export (--yaml) for further processing

Examples:
  saturntools scan game.iso
  saturntools scan /path/to/games/
  saturntools scan -v --no-recurse /path/to/games/
  saturntools scan -o report.txt --yaml report.yaml game1.bin game2.iso`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		noRecurse, err := cmd.Flags().GetBool("no-recurse")
		if err != nil {
			return fmt.Errorf("error getting no-recurse flag: %w", err)
		}
		outputFile, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error getting output flag: %w", err)
		}
		yamlFile, err := cmd.Flags().GetString("yaml")
		if err != nil {
			return fmt.Errorf("error getting yaml flag: %w", err)
		}

		// Scan all given files and directories
		processor := pkg.NewDiscProcessor()
		results := processor.ScanPaths(args, !noRecurse)
		if len(results) == 0 {
			fmt.Println("No files found to scan.")
			return nil
		}

		reporter := pkg.NewScanReporter()
		reporter.PrintResults(os.Stdout, results)

		if outputFile != "" {
			if err := reporter.WriteReport(results, outputFile); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
		if yamlFile != "" {
			if err := reporter.ExportYAML(results, yamlFile); err != nil {
				return fmt.Errorf("failed to export YAML: %w", err)
			}
		}

		return nil
	},
}

// init initializes the scan command with its flags.
func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with detailed scan information")
	scanCmd.Flags().Bool("no-recurse", false, "Do not recursively scan directories")
	scanCmd.Flags().StringP("output", "o", "", "Write the report to a file")
	scanCmd.Flags().String("yaml", "", "Export scan results to a YAML file")
}
