// File: pkg/combine/binary.go
package combine

import (
	"bytes"
)

// sniffSize is how much of a file is inspected for binary content.
const sniffSize = 512

// isBinaryContent checks if data is likely to be binary by looking at its first
// few bytes for null bytes or a high ratio of non-printable characters
func isBinaryContent(data []byte) bool {
	buffer := data
	if len(buffer) > sniffSize {
		buffer = buffer[:sniffSize]
	}

	// Empty files are considered text
	if len(buffer) == 0 {
		return false
	}

	// Check for null bytes (common in binary files)
	if bytes.Contains(buffer, []byte{0}) {
		return true
	}

	// Count non-printable characters
	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// If more than 30% non-printable characters, consider it binary
	return float64(nonPrintable)/float64(len(buffer)) > 0.3
}

// isPrintable checks if a byte is printable ASCII, common whitespace, or part
// of a multi-byte UTF-8 sequence.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
