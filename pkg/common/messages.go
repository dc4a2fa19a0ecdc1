package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Skip reasons reported for files that could not be scanned
const (
	SkipUnsupportedFileType = "Unsupported file type"
	SkipFileNotFound        = "File not found"
	SkipPermissionDenied    = "Permission denied"
	SkipFileTooSmall        = "File too small to be valid Saturn image"
	SkipNoSaturnHeader      = "No Saturn header found"
	SkipPathDoesNotExist    = "Path does not exist"
)

// Error messages
const (
	ErrFailedToReadImage        = "failed to read disc image"
	ErrFailedToWalkDirectory    = "failed to walk directory"
	ErrFailedToCreateReportFile = "failed to create report file"
	ErrFailedToMarshalYAML      = "failed to marshal scan results to YAML"
	ErrFailedToWriteYAML        = "failed to write YAML file"
)

// Info messages
const (
	InfoScanningDirectory = "Scanning directory %s"
	InfoReportWritten     = "Results written to: %s"
	InfoYAMLWritten       = "YAML results written to: %s"
)

// Debug messages
const (
	DebugHeaderFound    = "Header found in %s: sector %d (%s framing, MSF %s)"
	DebugFileSkipped    = "Skipping %s: %s"
	DebugPrefixRead     = "%s: read %d byte prefix"
	DebugPeripheralList = "%s: peripheral codes %q"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
