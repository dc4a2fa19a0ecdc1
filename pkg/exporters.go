// Package pkg provides functionality for scanning Sega Saturn disc images.
// This file contains exporters for rendering scan results as an aligned
// console table, a plain-text report file and a YAML document.
package pkg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hansbonini/saturntools/pkg/common"
	"github.com/hansbonini/saturntools/pkg/saturn"
	"gopkg.in/yaml.v3"
)

// Column widths for aligned report output
const (
	colTitle       = 50
	colVersion     = 8
	colPeriphCodes = 18
	colPeriphDesc  = 55
)

const reportWidth = 180

// ScanReporter implements the ReportExporter interface and renders scan
// results for the console and for report files.
type ScanReporter struct{}

// NewScanReporter creates a new scan reporter instance.
func NewScanReporter() *ScanReporter {
	return &ScanReporter{}
}

// PrintResults writes the scan results to the given writer as an aligned
// table with a banner and a summary line.
func (e *ScanReporter) PrintResults(writer io.Writer, results []*ScanResult) {
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, strings.Repeat("=", reportWidth))
	fmt.Fprintln(writer, "SaturnTools Peripheral Scanner")
	fmt.Fprintln(writer, strings.Repeat("=", reportWidth))
	fmt.Fprintf(writer, "\nScanned: %d file(s)\n", len(results))
	fmt.Fprintf(writer, "Timestamp: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, strings.Repeat("-", reportWidth))
	fmt.Fprintln(writer, resultTableHeader())
	fmt.Fprintln(writer, strings.Repeat("-", reportWidth))

	successful := 0
	skipped := 0
	for _, result := range results {
		switch {
		case result.Skipped:
			skipped++
			fmt.Fprintln(writer, skippedTableRow(result))
		case result.Success:
			successful++
			fmt.Fprintln(writer, resultTableRow(result))
		}
	}

	fmt.Fprintln(writer, strings.Repeat("-", reportWidth))
	fmt.Fprintf(writer, "Summary: %d successful, %d skipped\n", successful, skipped)
	fmt.Fprintln(writer, strings.Repeat("=", reportWidth))
}

// WriteReport writes the scan results to a report file, preceded by a
// commented preamble with the peripheral code reference table.
func (e *ScanReporter) WriteReport(results []*ScanResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateReportFile, err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# SaturnTools Peripheral Scanner")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "# Total files scanned: %d\n", len(results))
	fmt.Fprintln(file, "#")
	fmt.Fprintln(file, "# Peripheral Code Reference:")
	for _, code := range saturn.CatalogCodes() {
		fmt.Fprintf(file, "#   %c = %s\n", code, saturn.PeripheralCatalog[code])
	}
	fmt.Fprintln(file, "#")
	fmt.Fprintln(file, "# Format: Game_Title (0x60) | Version (0x2A) | Peripheral_Codes (0x50) | Supported Peripherals | Source Filename")
	fmt.Fprintln(file, "#"+strings.Repeat("=", reportWidth-1))
	fmt.Fprintln(file)
	fmt.Fprintln(file, resultTableHeader())
	fmt.Fprintln(file, strings.Repeat("-", reportWidth))

	for _, result := range results {
		switch {
		case result.Skipped:
			fmt.Fprintln(file, skippedTableRow(result))
		case result.Success:
			fmt.Fprintln(file, resultTableRow(result))
		}
	}

	common.LogInfo(common.InfoReportWritten, outputPath)
	return nil
}

// yamlReport is the document layout used by ExportYAML.
type yamlReport struct {
	Generator string        `yaml:"generator"`
	ScannedAt string        `yaml:"scanned_at"`
	Total     int           `yaml:"total"`
	Results   []*ScanResult `yaml:"results"`
}

// ExportYAML writes the scan results to a YAML file for further processing.
func (e *ScanReporter) ExportYAML(results []*ScanResult, outputPath string) error {
	report := yamlReport{
		Generator: "saturntools",
		ScannedAt: time.Now().Format(time.RFC3339),
		Total:     len(results),
		Results:   results,
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return common.FormatError(common.ErrFailedToMarshalYAML, err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return common.FormatError(common.ErrFailedToWriteYAML, err)
	}

	common.LogInfo(common.InfoYAMLWritten, outputPath)
	return nil
}

// resultTableHeader returns the column header row shared by the console
// and file reports.
func resultTableHeader() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		common.TruncateOrPad("Game_Title (0x60)", colTitle),
		common.TruncateOrPad("Version", colVersion),
		common.TruncateOrPad("Peripheral_Codes", colPeriphCodes),
		common.TruncateOrPad("Supported Peripherals", colPeriphDesc),
		"Source Filename")
}

// resultTableRow renders a successful scan as an aligned table row.
func resultTableRow(result *ScanResult) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		common.TruncateOrPad(result.GameTitle, colTitle),
		common.TruncateOrPad(result.Version, colVersion),
		common.TruncateOrPad(strings.TrimRight(result.PeripheralRaw, " "), colPeriphCodes),
		common.TruncateOrPad(result.HumanReadablePeripherals(), colPeriphDesc),
		result.Filename)
}

// skippedTableRow renders a skipped file with its skip reason in the
// peripherals column.
func skippedTableRow(result *ScanResult) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		common.TruncateOrPad("SKIPPED", colTitle),
		common.TruncateOrPad("", colVersion),
		common.TruncateOrPad("", colPeriphCodes),
		common.TruncateOrPad(result.SkipReason, colPeriphDesc),
		result.Filename)
}
