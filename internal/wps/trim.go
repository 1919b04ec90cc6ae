package wps

import "strings"

// Window is the half-open range [Start, End) of lines considered genuine
// content. End may be smaller than Start; such a window selects nothing.
type Window struct {
	Start int
	End   int
}

// Len returns the number of lines selected by w.
func (w Window) Len() int {
	if w.End <= w.Start {
		return 0
	}
	return w.End - w.Start
}

// Apply returns the lines selected by w. The result shares storage with lines.
func (w Window) Apply(lines []string) []string {
	if w.Len() == 0 {
		return []string{}
	}
	return lines[w.Start:w.End]
}

// Trim drops leading binary junk and trailing font metadata from lines using
// the default heuristics.
func Trim(lines []string) []string {
	return DefaultHeuristics().Trim(lines)
}

// Trim drops leading binary junk and trailing font metadata from lines.
func (h Heuristics) Trim(lines []string) []string {
	return h.Window(lines).Apply(lines)
}

// Window computes the start and end of the genuine content. The two ends are
// found independently of each other.
func (h Heuristics) Window(lines []string) Window {
	h = h.orDefault()
	return Window{Start: h.StartIndex(lines), End: h.EndIndex(lines)}
}

// StartIndex returns the index of the first line that looks like a title:
// non-empty, of reasonable length and made of plain prose characters. It
// returns 0 when no line qualifies.
func (h Heuristics) StartIndex(lines []string) int {
	h = h.orDefault()
	for i, line := range lines {
		if line == "" || len(line) <= h.MinTitleLen || len(line) >= h.MaxTitleLen {
			continue
		}
		if h.ProsePattern.MatchString(line) {
			return i
		}
	}
	return 0
}

// EndIndex scans backward from the tail, moving the cut to every line that
// carries a metadata marker, and stops at the first other line long enough
// to be content.
func (h Heuristics) EndIndex(lines []string) int {
	h = h.orDefault()
	end := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if h.isMetadata(line) {
			end = i
			continue
		}
		if line != "" && len(line) > h.MinContentLen {
			break
		}
	}
	return end
}

func (h Heuristics) isMetadata(line string) bool {
	for _, m := range h.MetadataMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
