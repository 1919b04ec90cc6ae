package poem

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// frontMatter is the YAML header written above the poem body.
type frontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags,flow"`
	Excerpt string   `yaml:"excerpt"`
}

var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"1/2/2006",
	"1/2/06",
}

// ParseDate interprets the date text found by Parse. ok is false when raw is
// empty or in no known layout.
func ParseDate(raw string) (t time.Time, ok bool) {
	raw = strings.Join(strings.Fields(raw), " ")
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// Markdown renders p as a Markdown document with YAML front matter. now is
// used as the date when the document carries none.
func (p Poem) Markdown(now time.Time) ([]byte, error) {
	date, ok := ParseDate(p.Date)
	if !ok {
		date = now
	}
	fm := frontMatter{
		Title:   p.Title,
		Date:    date.Format("2006-01-02"),
		Tags:    Tags(p.Raw, p.Title),
		Excerpt: Excerpt(p.Body),
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(FormatBody(p.Body))
	b.WriteString("\n")
	return b.Bytes(), nil
}

// FormatBody joins body lines, ending every line except the last of each
// stanza with two spaces so Markdown renders a hard line break.
func FormatBody(body []string) string {
	out := make([]string, len(body))
	for i, line := range body {
		if line == "" || i == len(body)-1 || body[i+1] == "" {
			out[i] = line
			continue
		}
		out[i] = line + "  "
	}
	return strings.Join(out, "\n")
}

const (
	excerptMin = 140
	excerptMax = 180
)

var spaceRunRe = regexp.MustCompile(`\s+`)

// Excerpt returns a summary of the body between excerptMin and excerptMax
// bytes long, preferring to cut at a sentence end and otherwise at a word.
func Excerpt(body []string) string {
	text := strings.TrimSpace(spaceRunRe.ReplaceAllString(strings.Join(body, " "), " "))
	if len(text) <= excerptMax {
		return text
	}
	for i := excerptMax; i >= excerptMin && i < len(text); i-- {
		if text[i] == '.' && i+1 < len(text) && text[i+1] == ' ' {
			return strings.TrimSpace(text[:i+1])
		}
	}
	end := excerptMax
	for end > excerptMin && text[end] != ' ' {
		end--
	}
	return strings.TrimSpace(text[:end])
}

const maxTags = 5

var tagKeywords = []struct {
	keyword string
	tags    []string
}{
	{"family", []string{"Family", "family"}},
	{"mother", []string{"mother", "Family"}},
	{"father", []string{"father", "Family"}},
	{"children", []string{"children", "Family"}},
	{"war", []string{"War", "war"}},
	{"death", []string{"Death", "death"}},
	{"theatre", []string{"Theatre", "theatre"}},
	{"time", []string{"Time", "time"}},
	{"meditation", []string{"Meditations"}},
	{"age", []string{"Aging", "age"}},
	{"old", []string{"Aging"}},
	{"memory", []string{"memory"}},
	{"poem", []string{"Little Poems"}},
	{"brother", []string{"brotherhood", "Family"}},
	{"god", []string{"religion"}},
}

// Tags picks up to maxTags tags from keywords found in text or title. Tags
// are deduplicated case-insensitively; "Abstract" is used when none match.
func Tags(text, title string) []string {
	text, title = strings.ToLower(text), strings.ToLower(title)
	tags := make([]string, 0, maxTags)
	seen := map[string]bool{}
	for _, k := range tagKeywords {
		if !strings.Contains(text, k.keyword) && !strings.Contains(title, k.keyword) {
			continue
		}
		for _, tag := range k.tags {
			key := strings.ToLower(tag)
			if seen[key] || len(tags) >= maxTags {
				continue
			}
			tags = append(tags, tag)
			seen[key] = true
		}
	}
	if len(tags) == 0 {
		tags = append(tags, "Abstract")
	}
	return tags
}
