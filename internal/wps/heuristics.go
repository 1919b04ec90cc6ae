package wps

import "regexp"

// Heuristics holds the thresholds used by the boundary trimmer.
type Heuristics struct {
	// MinTitleLen and MaxTitleLen are exclusive bounds on the length of the
	// first line accepted as the start of real content.
	MinTitleLen int
	MaxTitleLen int
	// ProsePattern must match the whole start line.
	ProsePattern *regexp.Regexp
	// MetadataMarkers are case-sensitive substrings identifying trailing
	// font and application records.
	MetadataMarkers []string
	// MinContentLen is the exclusive lower bound on the length of a tail
	// line that stops the backward metadata scan.
	MinContentLen int
}

var defaultProsePattern = regexp.MustCompile(`^[A-Za-z0-9\s,.\-!?'"]+$`)

// DefaultHeuristics returns the stock thresholds.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		MinTitleLen:     2,
		MaxTitleLen:     100,
		ProsePattern:    defaultProsePattern,
		MetadataMarkers: []string{"Microsoft Works", "MSWorks", "Arial", "Modern"},
		MinContentLen:   5,
	}
}

// orDefault fills unset fields so a zero Heuristics behaves like the default.
func (h Heuristics) orDefault() Heuristics {
	d := DefaultHeuristics()
	if h.MinTitleLen == 0 && h.MaxTitleLen == 0 {
		h.MinTitleLen, h.MaxTitleLen = d.MinTitleLen, d.MaxTitleLen
	}
	if h.ProsePattern == nil {
		h.ProsePattern = d.ProsePattern
	}
	if h.MetadataMarkers == nil {
		h.MetadataMarkers = d.MetadataMarkers
	}
	if h.MinContentLen == 0 {
		h.MinContentLen = d.MinContentLen
	}
	return h
}
