// Package domain implements the type extraction, consistency checking and
// release logic of typelint.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"typelint.dev/pkg/typelint/internal/adapter"
	"typelint.dev/pkg/typelint/internal/controller"
)

// OutputArgs selects how results are presented.
type OutputArgs struct {
	Format      controller.Format
	Interactive bool
}

func (o OutputArgs) options() []controller.DisplayOption {
	options := []controller.DisplayOption{controller.WithFormat(o.Format)}
	if o.Interactive {
		options = append(options, controller.WithInteractive())
	}

	return options
}

// Workflow runs one typelint command end to end and displays its result.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs, output OutputArgs) error
	Extract(ctx context.Context, args ExtractArgs, output OutputArgs) error
	Release(ctx context.Context, args ReleaseArgs, output OutputArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	checker   Checker
	extractor Extractor
	releaser  Releaser
	now       func() time.Time
}

// NewWorkflow constructs a Workflow from its collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	checker Checker,
	extractor Extractor,
	releaser Releaser,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		checker:   checker,
		extractor: extractor,
		releaser:  releaser,
		now:       time.Now,
	}
}

// Check displays the report and returns ErrIssuesFound when it holds issues.
// Warnings alone never fail.
func (w *workflow) Check(ctx context.Context, args CheckArgs, output OutputArgs) error {
	report, err := w.checker.Check(ctx, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayReport(ctx, report, output.options()...); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	if report.Failed() {
		return errors.Wrapf(ErrIssuesFound, "%d issue(s)", len(report.Issues))
	}

	return nil
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs, output OutputArgs) error {
	extraction, err := w.extractor.Extract(ctx, args)
	if err != nil {
		return err
	}

	if err := writeTypesDoc(ctx, w.fsAdapter, args.DocsPath, extraction, w.now()); err != nil {
		return err
	}

	if err := w.ui.DisplayExtraction(ctx, extraction, output.options()...); err != nil {
		return fmt.Errorf("display extraction: %w", err)
	}

	if args.FailOnConflict && len(extraction.Conflicts) > 0 {
		return errors.Wrapf(ErrConflictsFound, "%d conflict(s)", len(extraction.Conflicts))
	}

	return nil
}

func (w *workflow) Release(ctx context.Context, args ReleaseArgs, output OutputArgs) error {
	if args.Now.IsZero() {
		args.Now = w.now()
	}

	args.OnStep = func(step string) {
		w.ui.DisplayReleaseStep(ctx, step)
	}

	release, err := w.releaser.Release(ctx, args)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayRelease(ctx, release, output.options()...); err != nil {
		return fmt.Errorf("display release: %w", err)
	}

	return nil
}
