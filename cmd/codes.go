// Package cmd provides command-line interface for disc image scanning.
// This file contains the codes command, which prints the peripheral code
// reference table.
package cmd

import (
	"fmt"

	"github.com/hansbonini/saturntools/pkg/saturn"
	"github.com/spf13/cobra"
)

// codesCmd prints the official Sega peripheral code reference table.
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the Saturn peripheral code reference table",
	Long: `List the peripheral codes found in Saturn System ID headers together
with their human-readable device names, per the official Sega documentation.

Example:
  saturntools codes`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Peripheral Code Reference:")
		for _, code := range saturn.CatalogCodes() {
			fmt.Printf("  %c = %s\n", code, saturn.PeripheralCatalog[code])
		}
	},
}

// init initializes the codes command.
func init() {
	rootCmd.AddCommand(codesCmd)
}
