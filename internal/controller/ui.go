// Package controller renders typelint results for the terminal.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "typelint.dev/pkg/typelint/internal/model"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatText, nil
	}

	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// DisplayOption is a functional option for the Display methods.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds per-call display settings.
type DisplayConfig struct {
	format      Format
	interactive bool
}

// WithFormat selects the output format. Unknown or empty formats fall back to text.
func WithFormat(format Format) DisplayOption {
	return func(c *DisplayConfig) {
		c.format = format
	}
}

// WithInteractive opens text output in a pager when the output is a terminal.
func WithInteractive() DisplayOption {
	return func(c *DisplayConfig) {
		c.interactive = true
	}
}

func newDisplayConfig(options []DisplayOption) DisplayConfig {
	cfg := DisplayConfig{format: FormatText}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.format == "" {
		cfg.format = FormatText
	}

	return cfg
}

// UI displays check reports, extractions and release progress.
type UI interface {
	DisplayReport(ctx context.Context, report m.Report, options ...DisplayOption) error
	DisplayExtraction(ctx context.Context, extraction m.Extraction, options ...DisplayOption) error
	DisplayReleaseStep(ctx context.Context, step string)
	DisplayRelease(ctx context.Context, release m.Release, options ...DisplayOption) error
}

// NewUI returns a UI writing to the command output. Terminal output gets
// colour and may be paged.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
