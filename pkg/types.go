// Package pkg provides functionality for scanning Sega Saturn disc images
// and reporting the peripheral compatibility codes found in their headers.
package pkg

import (
	"io"
	"path/filepath"

	"github.com/hansbonini/saturntools/pkg/saturn"
)

// ScanResult represents the result of scanning a single file.
type ScanResult struct {
	Filepath        string   `yaml:"filepath"`
	Filename        string   `yaml:"filename"`
	Success         bool     `yaml:"success"`
	Skipped         bool     `yaml:"skipped"`
	SkipReason      string   `yaml:"skip_reason,omitempty"`
	GameTitle       string   `yaml:"game_title,omitempty"`
	Version         string   `yaml:"version,omitempty"`
	ProductNumber   string   `yaml:"product_number,omitempty"`
	AreaCodes       string   `yaml:"area_codes,omitempty"`
	PeripheralRaw   string   `yaml:"peripheral_raw,omitempty"`
	PeripheralCodes []string `yaml:"peripheral_codes,omitempty"`
	Framing         string   `yaml:"framing,omitempty"`
	Sector          int      `yaml:"sector,omitempty"`
}

// NewScanResult creates a blank result for a file path.
func NewScanResult(path string) *ScanResult {
	return &ScanResult{
		Filepath: path,
		Filename: filepath.Base(path),
	}
}

// HumanReadablePeripherals returns the comma-separated device names for
// the result's peripheral codes.
func (r *ScanResult) HumanReadablePeripherals() string {
	codes := make([]rune, 0, len(r.PeripheralCodes))
	for _, code := range r.PeripheralCodes {
		runes := []rune(code)
		if len(runes) > 0 {
			codes = append(codes, runes[0])
		}
	}
	return saturn.DescribePeripherals(codes)
}

// DiscScanner interface defines methods for scanning disc images
type DiscScanner interface {
	ScanFile(path string) *ScanResult
	ScanDirectory(dir string, recursive bool) []*ScanResult
	ScanPaths(paths []string, recursive bool) []*ScanResult
}

// ReportExporter interface defines methods for exporting scan results
type ReportExporter interface {
	PrintResults(writer io.Writer, results []*ScanResult)
	WriteReport(results []*ScanResult, outputPath string) error
	ExportYAML(results []*ScanResult, outputPath string) error
}
