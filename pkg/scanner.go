// Package pkg provides functionality for scanning Sega Saturn disc images.
// This file contains the disc processor that reads candidate files and
// drives the header locator and field decoder.
package pkg

import (
	"os"
	"path/filepath"

	"github.com/hansbonini/saturntools/pkg/common"
	"github.com/hansbonini/saturntools/pkg/saturn"
)

// DiscProcessor handles scanning of disc image files and directories.
type DiscProcessor struct{}

// NewDiscProcessor creates a new disc processor instance
func NewDiscProcessor() *DiscProcessor {
	return &DiscProcessor{}
}

// ScanFile scans a single file for a Saturn System ID header. I/O problems
// and unrecognizable contents become skip reasons on the result; ScanFile
// itself never fails.
func (p *DiscProcessor) ScanFile(path string) *ScanResult {
	result := NewScanResult(path)

	if !common.IsDiscImageFile(path) {
		result.Skipped = true
		result.SkipReason = common.SkipUnsupportedFileType
		return result
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		result.Skipped = true
		result.SkipReason = common.SkipFileNotFound
		return result
	}
	if info.Size() < saturn.CD_DATA_SIZE {
		result.Skipped = true
		result.SkipReason = common.SkipFileTooSmall
		return result
	}

	data, err := common.ReadFilePrefix(path, common.MaxPrefixSize)
	if err != nil {
		result.Skipped = true
		if os.IsPermission(err) {
			result.SkipReason = common.SkipPermissionDenied
		} else {
			result.SkipReason = common.FormatError(common.ErrFailedToReadImage, err).Error()
		}
		return result
	}
	common.LogDebug(common.DebugPrefixRead, result.Filename, len(data))

	header := saturn.LocateHeader(data)
	if header == nil {
		result.Skipped = true
		result.SkipReason = common.SkipNoSaturnHeader
		common.LogDebug(common.DebugFileSkipped, result.Filename, result.SkipReason)
		return result
	}
	common.LogDebug(common.DebugHeaderFound, result.Filename, header.Sector,
		header.Framing, common.LBAToMSF(uint32(header.Sector)))

	decoded := saturn.DecodeFields(header)
	result.GameTitle = decoded.GameTitle
	result.Version = decoded.Version
	result.ProductNumber = decoded.ProductNumber
	result.AreaCodes = decoded.AreaCodes
	result.PeripheralRaw = decoded.PeripheralRaw
	for _, code := range decoded.PeripheralCodes {
		result.PeripheralCodes = append(result.PeripheralCodes, string(code))
	}
	result.Framing = header.Framing.String()
	result.Sector = header.Sector
	result.Success = true

	common.LogDebug(common.DebugPeripheralList, result.Filename, result.PeripheralCodes)
	return result
}

// ScanDirectory scans a directory for Saturn disc images, optionally
// descending into subdirectories. Unreadable entries are skipped.
func (p *DiscProcessor) ScanDirectory(dir string, recursive bool) []*ScanResult {
	common.LogDebug(common.InfoScanningDirectory, dir)
	var results []*ScanResult

	if recursive {
		_ = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				common.LogWarn(common.ErrFailedToWalkDirectory+": %v", err)
				return nil
			}
			if !entry.IsDir() && common.IsDiscImageFile(path) {
				results = append(results, p.ScanFile(path))
			}
			return nil
		})
		return results
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		common.LogWarn(common.ErrFailedToWalkDirectory+": %v", err)
		return results
	}
	for _, entry := range entries {
		if !entry.IsDir() && common.IsDiscImageFile(entry.Name()) {
			results = append(results, p.ScanFile(filepath.Join(dir, entry.Name())))
		}
	}
	return results
}

// ScanPaths scans a mix of file and directory paths in the order given.
// Paths that do not exist produce skipped results rather than errors.
func (p *DiscProcessor) ScanPaths(paths []string, recursive bool) []*ScanResult {
	var results []*ScanResult
	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			results = append(results, p.ScanDirectory(path, recursive)...)
		case err == nil:
			results = append(results, p.ScanFile(path))
		default:
			result := NewScanResult(path)
			result.Skipped = true
			result.SkipReason = common.SkipPathDoesNotExist
			results = append(results, result)
		}
	}
	return results
}
