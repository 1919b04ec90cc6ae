package app

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperifyio/wpstext/internal/wps"
)

// Output formats accepted by Config.Format.
const (
	FormatLines = "lines"
	FormatPoem  = "poem"
)

// ErrUnknownFormat is returned for a Format other than FormatLines or FormatPoem.
var ErrUnknownFormat = errors.New("unknown output format")

// Config holds runtime configuration for the application.
type Config struct {
	InputPath string
	Format    string
	Verbose   bool

	// Heuristic overrides; zero values keep the stock thresholds.
	MinTitleLen     int
	MaxTitleLen     int
	ProsePattern    string
	MetadataMarkers []string
	MinContentLen   int
}

// Heuristics builds the trimmer thresholds from cfg.
func (cfg Config) Heuristics() (wps.Heuristics, error) {
	h := wps.DefaultHeuristics()
	if cfg.MinTitleLen > 0 {
		h.MinTitleLen = cfg.MinTitleLen
	}
	if cfg.MaxTitleLen > 0 {
		h.MaxTitleLen = cfg.MaxTitleLen
	}
	if strings.TrimSpace(cfg.ProsePattern) != "" {
		re, err := regexp.Compile(cfg.ProsePattern)
		if err != nil {
			return h, fmt.Errorf("config: prose pattern: %w", err)
		}
		h.ProsePattern = re
	}
	if len(cfg.MetadataMarkers) > 0 {
		h.MetadataMarkers = append([]string{}, cfg.MetadataMarkers...)
	}
	if cfg.MinContentLen > 0 {
		h.MinContentLen = cfg.MinContentLen
	}
	return h, nil
}

// ValidateConfig performs minimal validation of required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	switch cfg.Format {
	case "", FormatLines, FormatPoem:
	default:
		return fmt.Errorf("config: %w %q", ErrUnknownFormat, cfg.Format)
	}
	if cfg.MinTitleLen < 0 || cfg.MaxTitleLen < 0 || cfg.MinContentLen < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	h, err := cfg.Heuristics()
	if err != nil {
		return err
	}
	if h.MinTitleLen >= h.MaxTitleLen {
		return fmt.Errorf("config: title length bounds %d..%d select nothing", h.MinTitleLen, h.MaxTitleLen)
	}
	for _, m := range h.MetadataMarkers {
		if m == "" {
			return errors.New("config: empty metadata marker matches every line")
		}
	}
	return nil
}
