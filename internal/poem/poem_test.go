package poem

import (
	"reflect"
	"strings"
	"testing"
	"time"

	yaml "gopkg.in/yaml.v3"
)

var sampleLines = []string{
	"Sand Dunes,",
	"I",
	"ve seen the sea",
	"",
	"",
	"we",
	"nt home",
	"dont stop.",
	"Charlie",
	"June 5, 1998",
}

func TestParse_TitleDateAndBody(t *testing.T) {
	p := Parse(sampleLines)
	if p.Title != "Sand Dunes" {
		t.Fatalf("expected title 'Sand Dunes', got %q", p.Title)
	}
	if p.Date != "June 5, 1998" {
		t.Fatalf("expected date 'June 5, 1998', got %q", p.Date)
	}
	want := []string{"I've seen the sea", "", "went home", "don't stop."}
	if !reflect.DeepEqual(p.Body, want) {
		t.Fatalf("expected body %q, got %q", want, p.Body)
	}
}

func TestParse_SkipsJunkTitleCandidates(t *testing.T) {
	p := Parse([]string{"", "@@@", "Real Title", "line"})
	if p.Title != "Real Title" {
		t.Fatalf("expected 'Real Title', got %q", p.Title)
	}
	if !reflect.DeepEqual(p.Body, []string{"line"}) {
		t.Fatalf("unexpected body %q", p.Body)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := Parse(nil)
	if p.Title != "" || p.Date != "" || len(p.Body) != 0 {
		t.Fatalf("expected zero poem, got %+v", p)
	}
}

func TestParse_NoLeadingOrDuplicateBlankLines(t *testing.T) {
	p := Parse([]string{"Title", "", "", "first line", "", "", "", "second line", ""})
	want := []string{"first line", "", "second line", ""}
	if !reflect.DeepEqual(p.Body, want) {
		t.Fatalf("expected %q, got %q", want, p.Body)
	}
}

func TestRepairContractions(t *testing.T) {
	cases := map[string]string{
		"Ive been there":        "I've been there",
		"dont go, cant stay":    "don't go, can't stay",
		"thats what hes saying": "that's what he's saying",
		"Dont touch":            "Dont touch",
		"wontonsoup":            "wontonsoup",
		"":                      "",
	}
	for in, want := range cases {
		if got := RepairContractions(in); got != want {
			t.Fatalf("RepairContractions(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestExcerpt_ShortBodyReturnedWhole(t *testing.T) {
	got := Excerpt([]string{"one  line", "", "two"})
	if got != "one line two" {
		t.Fatalf("unexpected excerpt %q", got)
	}
}

func TestExcerpt_CutsAtSentence(t *testing.T) {
	body := make([]string, 30)
	for i := range body {
		body[i] = "abcdefghi."
	}
	got := Excerpt(body)
	if len(got) != 175 || !strings.HasSuffix(got, ".") {
		t.Fatalf("expected 175 chars ending in '.', got %d: %q", len(got), got)
	}
}

func TestExcerpt_CutsAtWord(t *testing.T) {
	body := make([]string, 30)
	for i := range body {
		body[i] = "abcdefghij"
	}
	got := Excerpt(body)
	if len(got) != 175 || strings.HasSuffix(got, " ") {
		t.Fatalf("expected 175 chars cut at a word, got %d: %q", len(got), got)
	}
}

func TestTags(t *testing.T) {
	if got := Tags("my mother and father", ""); !reflect.DeepEqual(got, []string{"mother", "Family", "father"}) {
		t.Fatalf("unexpected tags %q", got)
	}
	if got := Tags("", ""); !reflect.DeepEqual(got, []string{"Abstract"}) {
		t.Fatalf("expected Abstract, got %q", got)
	}
	got := Tags("family war death theatre time", "")
	if !reflect.DeepEqual(got, []string{"Family", "War", "Death", "Theatre", "Time"}) {
		t.Fatalf("unexpected capped tags %q", got)
	}
}

func TestParseDate(t *testing.T) {
	for raw, want := range map[string]string{
		"June 5, 1998": "1998-06-05",
		"June 5 1998":  "1998-06-05",
		"6/5/1998":     "1998-06-05",
		"6/5/98":       "1998-06-05",
	} {
		d, ok := ParseDate(raw)
		if !ok || d.Format("2006-01-02") != want {
			t.Fatalf("ParseDate(%q): expected %s, got %v ok=%v", raw, want, d, ok)
		}
	}
	if _, ok := ParseDate("someday"); ok {
		t.Fatalf("expected unparseable date")
	}
}

func TestMarkdown_FrontMatterAndBody(t *testing.T) {
	p := Parse(sampleLines)
	out, err := p.Markdown(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	parts := strings.SplitN(string(out), "---\n", 3)
	if len(parts) != 3 || parts[0] != "" {
		t.Fatalf("expected front matter delimiters, got %q", out)
	}
	var fm struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		t.Fatalf("front matter yaml: %v", err)
	}
	if fm.Title != "Sand Dunes" || len(fm.Tags) == 0 {
		t.Fatalf("unexpected front matter %+v", fm)
	}
	if !strings.Contains(parts[1], "1998-06-05") {
		t.Fatalf("expected parsed date in front matter, got %q", parts[1])
	}
	wantBody := "\nI've seen the sea\n\nwent home  \ndon't stop.\n"
	if parts[2] != wantBody {
		t.Fatalf("expected body %q, got %q", wantBody, parts[2])
	}
}

func TestMarkdown_FallsBackToNow(t *testing.T) {
	p := Poem{Title: "Untitled", Body: []string{"a line"}}
	out, err := p.Markdown(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if !strings.Contains(string(out), "2021-03-04") {
		t.Fatalf("expected fallback date, got %q", out)
	}
}
