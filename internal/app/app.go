package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/wpstext/internal/poem"
	"github.com/hyperifyio/wpstext/internal/wps"
)

// App extracts one document and writes the result to out.
type App struct {
	cfg       Config
	extractor wps.Extractor
	out       io.Writer
	now       func() time.Time
}

// New validates cfg and prepares an App writing to out.
func New(cfg Config, out io.Writer) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	h, err := cfg.Heuristics()
	if err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = FormatLines
	}
	return &App{
		cfg:       cfg,
		extractor: wps.HeuristicExtractor{Heuristics: h},
		out:       out,
		now:       time.Now,
	}, nil
}

// Run reads the input document, extracts its content and writes it out.
func (a *App) Run() error {
	data, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	lines := a.extractor.Extract(data)
	log.Debug().Str("input", a.cfg.InputPath).Int("lines", len(lines)).Str("format", a.cfg.Format).Msg("extracted")

	switch a.cfg.Format {
	case FormatPoem:
		return a.writePoem(lines)
	default:
		return a.writeLines(lines)
	}
}

func (a *App) writeLines(lines []string) error {
	w := bufio.NewWriter(a.out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (a *App) writePoem(lines []string) error {
	p := poem.Parse(lines)
	if p.Title == "" {
		base := filepath.Base(a.cfg.InputPath)
		p.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	doc, err := p.Markdown(a.now())
	if err != nil {
		return err
	}
	if _, err := a.out.Write(doc); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
