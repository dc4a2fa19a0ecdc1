// Package saturn provides Sega Saturn-specific structures and functionality.
// This file contains the System ID field decoder.
package saturn

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// DecodedHeader holds the text fields extracted from a System ID header.
// It is built once per located header and never modified afterwards.
type DecodedHeader struct {
	GameTitle       string // Game title (0x60, 112 bytes)
	Version         string // Version (0x2A, 6 bytes)
	ProductNumber   string // Product number (0x20, 10 bytes)
	AreaCodes       string // Area codes (0x40, 16 bytes)
	PeripheralRaw   string // Peripheral field as decoded text, unstripped
	PeripheralCodes []rune // Individual peripheral codes, in field order
}

// DecodeFields extracts the reportable text fields from a located header.
// It never fails: the game title, version, product number and area codes
// are decoded as one group, and an error in any of them blanks all four.
// The peripheral field is decoded independently and falls back to a hex
// dump of its raw bytes instead.
func DecodeFields(header *HeaderRegion) DecodedHeader {
	decoded := DecodedHeader{}

	title, errTitle := decodeField(header, OFFSET_GAME_TITLE, LEN_GAME_TITLE)
	version, errVersion := decodeField(header, OFFSET_VERSION, LEN_VERSION)
	product, errProduct := decodeField(header, OFFSET_PRODUCT_NUM, LEN_PRODUCT_NUM)
	area, errArea := decodeField(header, OFFSET_AREA_CODES, LEN_AREA_CODES)
	if errTitle == nil && errVersion == nil && errProduct == nil && errArea == nil {
		decoded.GameTitle = strings.TrimRightFunc(title, unicode.IsSpace)
		decoded.Version = strings.TrimRightFunc(version, unicode.IsSpace)
		decoded.ProductNumber = strings.TrimRightFunc(product, unicode.IsSpace)
		decoded.AreaCodes = strings.TrimRightFunc(area, unicode.IsSpace)
	}

	decoded.PeripheralRaw, decoded.PeripheralCodes = decodePeripheralField(header)

	return decoded
}

// Scan locates and decodes the System ID header in a disc image buffer.
// The boolean reports whether a header was found; a false result is the
// normal outcome for buffers that are not Saturn images.
func Scan(data []byte) (DecodedHeader, bool) {
	header := LocateHeader(data)
	if header == nil {
		return DecodedHeader{}, false
	}
	return DecodeFields(header), true
}

// decodePeripheralField decodes the 16-byte peripheral support field into
// its raw text form and the list of individual codes. Codes keep their
// field order and duplicates; spaces, NULs and non-printable characters
// are discarded. On a decode error the raw form degrades to a hex dump
// and no codes are reported.
func decodePeripheralField(header *HeaderRegion) (string, []rune) {
	raw, err := decodeField(header, OFFSET_PERIPHERAL, LEN_PERIPHERAL)
	if err != nil {
		return hex.EncodeToString(header.Data[OFFSET_PERIPHERAL : OFFSET_PERIPHERAL+LEN_PERIPHERAL]), nil
	}

	var codes []rune
	for _, char := range raw {
		if char != ' ' && char != 0x00 && unicode.IsPrint(char) {
			codes = append(codes, char)
		}
	}
	return raw, codes
}

// decodeField decodes a fixed-offset field of the header as single-byte
// ASCII text. Bytes outside the ASCII range become the Unicode replacement
// character rather than failing the decode; the only error condition is a
// field that does not fit the header region.
func decodeField(header *HeaderRegion, offset, length int) (string, error) {
	if offset < 0 || length < 0 || offset+length > len(header.Data) {
		return "", fmt.Errorf("field at 0x%02X+%d exceeds %d byte header", offset, length, len(header.Data))
	}
	return decodeASCII(header.Data[offset : offset+length]), nil
}

// decodeASCII interprets a byte slice as single-byte ASCII text,
// substituting U+FFFD for any byte with the high bit set.
func decodeASCII(field []byte) string {
	var builder strings.Builder
	builder.Grow(len(field))
	for _, b := range field {
		if b < 0x80 {
			builder.WriteByte(b)
		} else {
			builder.WriteRune(unicode.ReplacementChar)
		}
	}
	return builder.String()
}
