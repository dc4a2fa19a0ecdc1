// Package saturn provides Sega Saturn-specific structures and functionality.
// This file contains the System ID (IP.BIN) header layout and the logic
// for locating it inside a disc image buffer.
package saturn

// SaturnMagic is the 16-byte hardware identifier at the start of the
// System ID header of every Saturn disc.
const SaturnMagic = "SEGA SEGASATURN "

// HEADER_SIZE is the size of the System ID region extracted for decoding.
const HEADER_SIZE = 256

// HEADER_SCAN_SECTORS is how many leading sectors are searched for the
// header. Saturn discs place the System ID and Initial Program data in
// the first 16 physical sectors.
const HEADER_SCAN_SECTORS = 16

// System ID field offsets (from start of the located sector's user data)
const (
	OFFSET_HARDWARE_ID  = 0x00 // 16 bytes - "SEGA SEGASATURN "
	OFFSET_MAKER_ID     = 0x10 // 16 bytes
	OFFSET_PRODUCT_NUM  = 0x20 // 10 bytes
	OFFSET_VERSION      = 0x2A // 6 bytes
	OFFSET_RELEASE_DATE = 0x30 // 8 bytes
	OFFSET_DEVICE_INFO  = 0x38 // 8 bytes
	OFFSET_AREA_CODES   = 0x40 // 16 bytes (10 meaningful)
	OFFSET_PERIPHERAL   = 0x50 // 16 bytes
	OFFSET_GAME_TITLE   = 0x60 // 112 bytes
)

// System ID field lengths
const (
	LEN_HARDWARE_ID  = 16
	LEN_MAKER_ID     = 16
	LEN_PRODUCT_NUM  = 10
	LEN_VERSION      = 6
	LEN_RELEASE_DATE = 8
	LEN_DEVICE_INFO  = 8
	LEN_AREA_CODES   = 16
	LEN_PERIPHERAL   = 16
	LEN_GAME_TITLE   = 112
)

// HeaderRegion holds the System ID block of a located Saturn image together
// with where and how it was found. It is only ever constructed after the
// hardware identifier has been verified.
type HeaderRegion struct {
	Data    [HEADER_SIZE]byte // System ID bytes, magic included
	Framing FramingMode       // Framing the header was found under
	Sector  int               // Sector index the header was found at
}

// LocateHeader searches the first sectors of a disc image buffer for the
// Saturn System ID header. It returns nil when no header is present;
// absence is not an error, it just means the buffer is not a recognizable
// Saturn image.
//
// The search order is: sector 0 under the detected framing (the common
// case), then sectors 1-15 under the same framing, then sectors 0-15
// reinterpreted as stripped when the detected framing was raw. The last
// pass covers images whose sync bytes are corrupted or inconsistently
// stripped. Sectors whose window would exceed the buffer are skipped.
func LocateHeader(data []byte) *HeaderRegion {
	mode := DetectFraming(data)

	if region := headerAt(data, 0, mode); region != nil {
		return region
	}

	for sector := 1; sector < HEADER_SCAN_SECTORS; sector++ {
		if region := headerAt(data, sector, mode); region != nil {
			return region
		}
	}

	if mode == FramingRaw {
		for sector := 0; sector < HEADER_SCAN_SECTORS; sector++ {
			if region := headerAt(data, sector, FramingStripped); region != nil {
				return region
			}
		}
	}

	return nil
}

// headerAt checks a single sector for the Saturn magic and builds the
// header region on a match.
func headerAt(data []byte, sector int, mode FramingMode) *HeaderRegion {
	sectorData := SectorData(data, sector, mode)
	if sectorData == nil {
		return nil
	}
	if string(sectorData[:len(SaturnMagic)]) != SaturnMagic {
		return nil
	}

	region := &HeaderRegion{Framing: mode, Sector: sector}
	copy(region.Data[:], sectorData[:HEADER_SIZE])
	return region
}
