// Package saturn provides Sega Saturn-specific structures and functionality.
// This file contains CD-ROM sector framing structures and detection for
// Saturn disc images.
package saturn

import "bytes"

// Sector size constants for Saturn CD-ROM images
const (
	CD_SECTOR_SIZE     = 2352 // Full raw CD sector size
	CD_DATA_SIZE       = 2048 // User data portion of a Mode 1 sector
	CD_SYNC_SIZE       = 12   // Sync pattern size
	CD_RAW_DATA_OFFSET = 16   // Sync (12) + header (4) preceding user data
)

// FramingMode identifies how a disc image organizes its sectors.
type FramingMode int

const (
	// FramingStripped: 2048 bytes/sector, framing overhead removed (.iso)
	FramingStripped FramingMode = iota
	// FramingRaw: full 2352 bytes/sector with sync and header intact (.bin)
	FramingRaw
)

// String returns the conventional short name of the framing mode.
func (m FramingMode) String() string {
	if m == FramingRaw {
		return "raw"
	}
	return "stripped"
}

// SectorM1 represents a Mode 1 raw sector as stored in .bin images
type SectorM1 struct {
	Sync     [12]byte   // Sync pattern
	Address  [3]byte    // Sector address (MSF format)
	Mode     byte       // Mode (usually 1)
	Data     [2048]byte // User data
	EDC      [4]byte    // Error Detection Code
	Reserved [8]byte    // Reserved area
	ECC      [276]byte  // Error Correction Code
}

// syncPattern is the 12-byte preamble of a raw CD-ROM sector.
var syncPattern = [CD_SYNC_SIZE]byte{
	0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
}

// DetectFraming inspects the start of a disc image buffer and reports
// whether it uses raw or stripped sector framing. Buffers too short to
// carry a sync pattern default to stripped. This never fails.
func DetectFraming(data []byte) FramingMode {
	if len(data) < 16 {
		return FramingStripped
	}
	if bytes.Equal(data[:CD_SYNC_SIZE], syncPattern[:]) {
		return FramingRaw
	}
	return FramingStripped
}

// SectorData returns the 2048-byte user-data window of the given sector
// under the given framing mode, or nil when the window would read past
// the end of the buffer. A nil result means "no data for this sector",
// not an error; prefixes of large images are routinely truncated.
func SectorData(data []byte, sector int, mode FramingMode) []byte {
	var offset int
	if mode == FramingRaw {
		offset = sector*CD_SECTOR_SIZE + CD_RAW_DATA_OFFSET
	} else {
		offset = sector * CD_DATA_SIZE
	}
	if offset < 0 || offset+CD_DATA_SIZE > len(data) {
		return nil
	}
	return data[offset : offset+CD_DATA_SIZE]
}
