// Package pkg provides tests for scan result types
package pkg

import "testing"

func TestNewScanResult(t *testing.T) {
	result := NewScanResult("/games/saturn/panzer.bin")
	if result.Filepath != "/games/saturn/panzer.bin" {
		t.Errorf("Filepath = %q, want full path", result.Filepath)
	}
	if result.Filename != "panzer.bin" {
		t.Errorf("Filename = %q, want %q", result.Filename, "panzer.bin")
	}
	if result.Success || result.Skipped {
		t.Error("NewScanResult() should start neither successful nor skipped")
	}
}

func TestScanResult_HumanReadablePeripherals(t *testing.T) {
	testCases := []struct {
		name     string
		codes    []string
		expected string
	}{
		{"known codes", []string{"J", "A", "M", "K"}, "Control Pad, Analog Controller, Mouse, Keyboard"},
		{"unknown code", []string{"J", "Z"}, "Control Pad, Unknown(Z)"},
		{"duplicates preserved", []string{"J", "J"}, "Control Pad, Control Pad"},
		{"no codes", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := NewScanResult("game.iso")
			result.PeripheralCodes = tc.codes
			if desc := result.HumanReadablePeripherals(); desc != tc.expected {
				t.Errorf("HumanReadablePeripherals() = %q, want %q", desc, tc.expected)
			}
		})
	}
}
