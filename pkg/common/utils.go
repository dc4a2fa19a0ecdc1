package common

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxPrefixSize is the largest prefix read from a candidate disc image.
// The System ID header always sits within the first 16 sectors, so 64KB
// is more than enough for either sector framing.
const MaxPrefixSize = 65536

// IsDiscImageFile reports whether a path carries an extension the scanner
// understands (.iso or .bin, case-insensitive).
func IsDiscImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".iso", ".bin":
		return true
	}
	return false
}

// ReadFilePrefix reads up to limit bytes from the start of a file.
// A file shorter than limit yields its full contents without error.
func ReadFilePrefix(path string, limit int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buffer := make([]byte, limit)
	n, err := io.ReadFull(file, buffer)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return buffer[:n], nil
}

// TruncateOrPad fits text to an exact column width: over-wide values are
// truncated with an ellipsis, narrow values are right-padded with spaces.
func TruncateOrPad(text string, width int) string {
	if len(text) > width {
		if width <= 3 {
			return text[:width]
		}
		return text[:width-3] + "..."
	}
	return text + strings.Repeat(" ", width-len(text))
}
