package wps

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Extractor turns raw document bytes into the ordered list of content lines.
type Extractor interface {
	Extract(data []byte) []string
}

// HeuristicExtractor scans the bytes and trims the result with Heuristics.
// The zero value uses DefaultHeuristics.
type HeuristicExtractor struct {
	Heuristics Heuristics
}

// Extract runs the scanner and the boundary trimmer over data.
func (e HeuristicExtractor) Extract(data []byte) []string {
	lines := Scan(data)
	w := e.Heuristics.Window(lines)
	log.Debug().
		Int("bytes", len(data)).
		Int("lines", len(lines)).
		Int("start", w.Start).
		Int("end", w.End).
		Msg("wps: trim window")
	return w.Apply(lines)
}

// Extract recovers the content lines of a .wps document with the default
// heuristics.
func Extract(data []byte) []string {
	return HeuristicExtractor{}.Extract(data)
}

// ExtractFile reads path fully and extracts its content lines.
func ExtractFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Extract(data), nil
}
