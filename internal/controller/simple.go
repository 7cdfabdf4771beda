package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "typelint.dev/pkg/typelint/internal/model"
)

// SimpleUI implements UI by writing to the cobra command output.
type SimpleUI struct {
	cmd     *cobra.Command
	isTTY   bool
	palette palette
	pager   func(title, content string) error
}

// NewSimpleUI creates a new SimpleUI. Terminal output is coloured.
func NewSimpleUI(cmd *cobra.Command, isTTY bool) *SimpleUI {
	s := &SimpleUI{cmd: cmd, isTTY: isTTY, palette: plainPalette}
	if isTTY {
		s.palette = styledPalette
	}

	s.pager = func(title, content string) error {
		return runPager(s.cmd.InOrStdin(), s.cmd.OutOrStdout(), title, content)
	}

	return s
}

// DisplayReport prints the validation report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.show(newDisplayConfig(options), reportTitle, report, func() string {
		return renderReport(report, s.palette)
	})
}

// DisplayExtraction prints tree statistics and conflicts with their diffs.
func (s *SimpleUI) DisplayExtraction(ctx context.Context, extraction m.Extraction, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.show(newDisplayConfig(options), extractionTitle, extraction, func() string {
		return renderExtraction(extraction, s.palette)
	})
}

// DisplayReleaseStep announces a release step as it starts.
func (s *SimpleUI) DisplayReleaseStep(ctx context.Context, step string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s...\n", s.palette.muted("==>"), step)
}

// DisplayRelease prints the released version, or the preview of a dry run.
func (s *SimpleUI) DisplayRelease(ctx context.Context, release m.Release, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newDisplayConfig(options)
	cfg.interactive = false

	return s.show(cfg, "Release", release, func() string {
		return renderRelease(release, s.palette)
	})
}

func (s *SimpleUI) show(cfg DisplayConfig, title string, data any, text func() string) error {
	if cfg.format != FormatText {
		out, err := encode(cfg.format, data)
		if err != nil {
			return err
		}

		s.printf("%s", out)

		return nil
	}

	content := text()

	if cfg.interactive && s.isTTY {
		return s.pager(title, content)
	}

	s.printf("%s", content)

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
