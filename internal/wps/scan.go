package wps

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ByteClass is the role a single input byte plays in the scanner.
type ByteClass int

const (
	// Discarded bytes are dropped without ending the current run.
	Discarded ByteClass = iota
	// Accepted bytes are appended to the current run.
	Accepted
	// Terminator ends the current run and emits a line.
	Terminator
)

func (c ByteClass) String() string {
	switch c {
	case Accepted:
		return "accepted"
	case Terminator:
		return "terminator"
	default:
		return "discarded"
	}
}

// Classify reports how b is treated by Scan. It depends on the byte value only.
func Classify(b byte) ByteClass {
	switch {
	case b == '\n':
		return Terminator
	case b == '\t', b >= 0x20 && b <= 0x7e:
		return Accepted
	default:
		return Discarded
	}
}

// Scan walks the raw document bytes and returns every recovered line in file
// order. Consecutive line feeds yield empty strings, which mark paragraph and
// stanza breaks. Bytes after the last line feed are not returned.
func Scan(data []byte) []string {
	lines := make([]string, 0, 64)
	run := make([]byte, 0, 256)
	for _, b := range data {
		switch Classify(b) {
		case Terminator:
			if len(run) == 0 {
				lines = append(lines, "")
				break
			}
			if line, ok := decodeLine(run); ok {
				lines = append(lines, line)
			}
			run = run[:0]
		case Accepted:
			run = append(run, b)
		}
	}
	return lines
}

// decodeLine maps run through Latin-1 and trims surrounding whitespace. The
// mapping is total for accepted bytes, so ok is false only if the decoder
// itself fails.
func decodeLine(run []byte) (string, bool) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(run)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}
