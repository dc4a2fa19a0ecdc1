// Package saturn provides Sega Saturn-specific structures and functionality.
// This file contains the peripheral code reference table.
package saturn

import (
	"fmt"
	"sort"
	"strings"
)

// PeripheralCatalog maps single-character peripheral codes to device names,
// per the official Sega documentation.
var PeripheralCatalog = map[rune]string{
	'J': "Control Pad",
	'A': "Analog Controller",
	'E': "3D Controller",
	'M': "Mouse",
	'K': "Keyboard",
	'S': "Steering Controller",
	'T': "Multitap",
	'G': "Virtua Gun",
	'W': "RAM Cartridge",
	'C': "Link Cable (JP)",
	'D': "DirectLink (US)",
	'X': "NetLink Modem",
	'Q': "Pachinko Controller",
	'F': "Floppy Drive",
	'R': "ROM Cartridge",
	'P': "Video CD Card",
}

// DescribePeripheral returns the device name for a peripheral code.
// Codes outside the catalog are rendered as Unknown(<code>); an unknown
// code is not an error condition.
func DescribePeripheral(code rune) string {
	if name, ok := PeripheralCatalog[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%c)", code)
}

// CatalogCodes returns the catalog's codes in ascending order, for stable
// reference listings.
func CatalogCodes() []rune {
	codes := make([]rune, 0, len(PeripheralCatalog))
	for code := range PeripheralCatalog {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// DescribePeripherals returns the comma-separated device names for a list
// of peripheral codes, preserving order and duplicates.
func DescribePeripherals(codes []rune) string {
	descriptions := make([]string, 0, len(codes))
	for _, code := range codes {
		descriptions = append(descriptions, DescribePeripheral(code))
	}
	return strings.Join(descriptions, ", ")
}
