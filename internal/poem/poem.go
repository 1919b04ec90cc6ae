// Package poem turns the content lines recovered from a Works document into a
// poem: title, date, and stanza-structured body, cleaned of the fragments and
// dropped apostrophes the byte-level extraction leaves behind.
package poem

import (
	"regexp"
	"strings"
)

// Poem is the structured result of Parse.
type Poem struct {
	Title string
	// Date is the raw date text found in the document, if any.
	Date string
	// Body holds the poem lines; empty strings separate stanzas.
	Body []string
	// Raw is the trimmed input joined with newlines, used for tagging.
	Raw string
}

var (
	dateRe         = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}|\d{1,2}/\d{1,2}/\d{2,4}`)
	signatureRe    = regexp.MustCompile(`(?i)^(Charlie|Charles|CRS)$`)
	titleJunkRe    = regexp.MustCompile(`^[@#$%^&*]`)
	trailCommaRe   = regexp.MustCompile(`,\s*$`)
	endPunctRe     = regexp.MustCompile(`[.,!?;:]$`)
	singleLetterRe = regexp.MustCompile(`^[A-Za-z]$`)
	suffixRe       = regexp.MustCompile(`^(ve|ll|re|d|t|s|m)$`)
)

// titleSearchLines bounds how far into the document the title may appear.
const titleSearchLines = 5

// Parse extracts title, date and body from content lines.
func Parse(lines []string) Poem {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}

	var p Poem
	p.Raw = strings.Join(trimmed, "\n")

	signature := -1
	for i, line := range trimmed {
		if m := dateRe.FindString(line); m != "" {
			p.Date = m
			if 2*i > len(trimmed) {
				signature = i
			}
		}
		if signatureRe.MatchString(line) {
			signature = i
		}
	}

	bodyStart := 0
	for i := 0; i < len(trimmed) && i < titleSearchLines; i++ {
		line := trimmed[i]
		if line != "" && len(line) < 100 && !titleJunkRe.MatchString(line) {
			p.Title = trailCommaRe.ReplaceAllString(line, "")
			bodyStart = i + 1
			break
		}
	}

	bodyEnd := len(trimmed)
	if signature > 0 {
		bodyEnd = signature
	}
	if bodyEnd < bodyStart {
		bodyEnd = bodyStart
	}
	p.Body = cleanBody(trimmed[bodyStart:bodyEnd])
	return p
}

// cleanBody collapses repeated blank lines, drops signatures and merges the
// one- and two-character fragments Works splits words into.
func cleanBody(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			continue
		}
		if signatureRe.MatchString(line) {
			continue
		}
		if len(line) > 2 || endPunctRe.MatchString(line) || i == len(lines)-1 {
			out = append(out, line)
			continue
		}
		next := lines[i+1]
		if next == "" {
			out = append(out, line)
			continue
		}
		out = append(out, mergeFragment(line, next))
		i++
	}
	for i, line := range out {
		out[i] = RepairContractions(line)
	}
	return out
}

func mergeFragment(frag, next string) string {
	if !singleLetterRe.MatchString(frag) {
		return frag + next
	}
	word, rest := next, ""
	if i := strings.IndexAny(next, " \t"); i >= 0 {
		word, rest = next[:i], next[i:]
	}
	if !suffixRe.MatchString(word) {
		return frag + next
	}
	merged := frag + "'" + word
	if rest = strings.TrimSpace(rest); rest != "" {
		merged += " " + rest
	}
	return merged
}

var contractions = []struct {
	re   *regexp.Regexp
	with string
}{
	{regexp.MustCompile(`\bIve\b`), "I've"},
	{regexp.MustCompile(`\bId\b`), "I'd"},
	{regexp.MustCompile(`\bIll\b`), "I'll"},
	{regexp.MustCompile(`\bIm\b`), "I'm"},
	{regexp.MustCompile(`\bdont\b`), "don't"},
	{regexp.MustCompile(`\bcant\b`), "can't"},
	{regexp.MustCompile(`\bwont\b`), "won't"},
	{regexp.MustCompile(`\bdidnt\b`), "didn't"},
	{regexp.MustCompile(`\bwouldnt\b`), "wouldn't"},
	{regexp.MustCompile(`\bcouldnt\b`), "couldn't"},
	{regexp.MustCompile(`\bshouldnt\b`), "shouldn't"},
	{regexp.MustCompile(`\bisnt\b`), "isn't"},
	{regexp.MustCompile(`\barent\b`), "aren't"},
	{regexp.MustCompile(`\bwasnt\b`), "wasn't"},
	{regexp.MustCompile(`\bwerent\b`), "weren't"},
	{regexp.MustCompile(`\bhasnt\b`), "hasn't"},
	{regexp.MustCompile(`\bhavent\b`), "haven't"},
	{regexp.MustCompile(`\bhadnt\b`), "hadn't"},
	{regexp.MustCompile(`\byoure\b`), "you're"},
	{regexp.MustCompile(`\byouve\b`), "you've"},
	{regexp.MustCompile(`\byoull\b`), "you'll"},
	{regexp.MustCompile(`\btheyre\b`), "they're"},
	{regexp.MustCompile(`\btheyve\b`), "they've"},
	{regexp.MustCompile(`\btheyll\b`), "they'll"},
	{regexp.MustCompile(`\bweve\b`), "we've"},
	{regexp.MustCompile(`\bthats\b`), "that's"},
	{regexp.MustCompile(`\bwhats\b`), "what's"},
	{regexp.MustCompile(`\bwheres\b`), "where's"},
	{regexp.MustCompile(`\bwhos\b`), "who's"},
	{regexp.MustCompile(`\bhes\b`), "he's"},
	{regexp.MustCompile(`\bshes\b`), "she's"},
}

// RepairContractions restores apostrophes in common contractions. Only whole,
// case-exact words are rewritten.
func RepairContractions(line string) string {
	if line == "" {
		return line
	}
	for _, c := range contractions {
		line = c.re.ReplaceAllLiteralString(line, c.with)
	}
	return line
}
