// Package saturn provides tests for the peripheral code catalog
package saturn

import "testing"

func TestPeripheralCatalog_Complete(t *testing.T) {
	expected := map[rune]string{
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

	if len(PeripheralCatalog) != len(expected) {
		t.Errorf("PeripheralCatalog has %d entries, want %d", len(PeripheralCatalog), len(expected))
	}
	for code, name := range expected {
		if PeripheralCatalog[code] != name {
			t.Errorf("PeripheralCatalog[%c] = %q, want %q", code, PeripheralCatalog[code], name)
		}
	}
}

func TestDescribePeripheral(t *testing.T) {
	testCases := []struct {
		name     string
		code     rune
		expected string
	}{
		{"known code", 'J', "Control Pad"},
		{"known accessory", 'X', "NetLink Modem"},
		{"unknown letter", 'Z', "Unknown(Z)"},
		{"lowercase not in catalog", 'j', "Unknown(j)"},
		{"digit", '7', "Unknown(7)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := DescribePeripheral(tc.code); result != tc.expected {
				t.Errorf("DescribePeripheral(%c) = %q, want %q", tc.code, result, tc.expected)
			}
		})
	}
}

func TestCatalogCodes_SortedAndComplete(t *testing.T) {
	codes := CatalogCodes()
	if len(codes) != len(PeripheralCatalog) {
		t.Fatalf("CatalogCodes() has %d entries, want %d", len(codes), len(PeripheralCatalog))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("CatalogCodes() not in ascending order at index %d: %c >= %c", i, codes[i-1], codes[i])
		}
	}
}

func TestDescribePeripherals_Empty(t *testing.T) {
	if result := DescribePeripherals(nil); result != "" {
		t.Errorf("DescribePeripherals(nil) = %q, want empty string", result)
	}
}
