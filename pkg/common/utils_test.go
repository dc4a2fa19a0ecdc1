// Package common provides tests for utility functions
package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsDiscImageFile(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{"iso lowercase", "game.iso", true},
		{"bin lowercase", "game.bin", true},
		{"iso uppercase", "GAME.ISO", true},
		{"bin mixed case", "Game.BiN", true},
		{"with directory", "/games/saturn/game.iso", true},
		{"cue sheet", "game.cue", false},
		{"text file", "readme.txt", false},
		{"no extension", "game", false},
		{"extension only", ".iso", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := IsDiscImageFile(tc.path); result != tc.expected {
				t.Errorf("IsDiscImageFile(%q) = %v, want %v", tc.path, result, tc.expected)
			}
		})
	}
}

func TestReadFilePrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	contents := bytes.Repeat([]byte{0x5A}, 1000)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	t.Run("file shorter than limit", func(t *testing.T) {
		data, err := ReadFilePrefix(path, 4096)
		if err != nil {
			t.Fatalf("ReadFilePrefix() failed: %v", err)
		}
		if !bytes.Equal(data, contents) {
			t.Errorf("ReadFilePrefix() = %d bytes, want full %d byte file", len(data), len(contents))
		}
	})

	t.Run("file longer than limit", func(t *testing.T) {
		data, err := ReadFilePrefix(path, 100)
		if err != nil {
			t.Fatalf("ReadFilePrefix() failed: %v", err)
		}
		if len(data) != 100 {
			t.Errorf("ReadFilePrefix() = %d bytes, want 100", len(data))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFilePrefix(filepath.Join(dir, "missing.bin"), 100); err == nil {
			t.Error("ReadFilePrefix() should fail for a missing file")
		}
	})
}

func TestTruncateOrPad(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"pad short text", "abc", 6, "abc   "},
		{"exact width", "abcdef", 6, "abcdef"},
		{"truncate with ellipsis", "abcdefghij", 6, "abc..."},
		{"empty text", "", 4, "    "},
		{"tiny width", "abcdef", 2, "ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := TruncateOrPad(tc.text, tc.width)
			if result != tc.expected {
				t.Errorf("TruncateOrPad(%q, %d) = %q, want %q", tc.text, tc.width, result, tc.expected)
			}
			if len(result) != tc.width {
				t.Errorf("TruncateOrPad(%q, %d) length = %d, want %d", tc.text, tc.width, len(result), tc.width)
			}
		})
	}
}
