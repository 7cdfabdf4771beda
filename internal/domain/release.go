package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"typelint.dev/pkg/typelint/internal/adapter"
	m "typelint.dev/pkg/typelint/internal/model"
)

// Release step names reported through ReleaseArgs.OnStep.
const (
	StepValidateState = "validate release state"
	StepCheckTypes    = "check type consistency"
	StepRunTests      = "run tests"
	StepBuild         = "build package"
	StepBumpVersion   = "bump version"
	StepChangelog     = "update changelog"
	StepCommit        = "commit release"
	StepPublish       = "publish package"
	StepTagAndPush    = "tag and push"
)

var (
	// ErrDirtyWorkingTree is returned when the release starts with uncommitted changes.
	ErrDirtyWorkingTree = errors.New("working tree is not clean")

	// ErrReleaseBranch is returned when the release starts outside the release branches.
	ErrReleaseBranch = errors.New("not on a release branch")
)

// ReleaseArgs configures one release.
type ReleaseArgs struct {
	Kind       ReleaseKind
	DryRun     bool
	PackageDir string
	Commands   ReleaseCommands
	Branches   []string
	Changelog  m.Path
	Check      CheckArgs
	Now        time.Time
	OnStep     func(step string)

	// Extract runs a type extraction before the consistency check. Nil skips it.
	Extract *ExtractArgs
}

// Releaser validates, builds, versions and publishes the types package.
type Releaser interface {
	Release(ctx context.Context, args ReleaseArgs) (m.Release, error)
}

type releaser struct {
	fsAdapter    adapter.SourceFSAdapter
	checker      Checker
	extractor    Extractor
	newToolchain ToolchainFactory
}

// NewReleaser constructs a Releaser. A toolchain is built per release from
// the package directory and commands in ReleaseArgs.
func NewReleaser(fsAdapter adapter.SourceFSAdapter, checker Checker, extractor Extractor, newToolchain ToolchainFactory) Releaser {
	return &releaser{
		fsAdapter:    fsAdapter,
		checker:      checker,
		extractor:    extractor,
		newToolchain: newToolchain,
	}
}

func (r *releaser) Release(ctx context.Context, args ReleaseArgs) (m.Release, error) {
	result := m.Release{DryRun: args.DryRun}

	if args.Now.IsZero() {
		args.Now = time.Now()
	}

	step := func(name string) {
		slog.Info("release step", "step", name, "dryRun", args.DryRun)

		if args.OnStep != nil {
			args.OnStep(name)
		}
	}

	toolchain := r.newToolchain(args.PackageDir, args.Commands)

	step(StepValidateState)

	if err := r.validateState(ctx, toolchain, args.Branches); err != nil {
		return result, err
	}

	step(StepCheckTypes)

	conflicts, err := r.extractTypes(ctx, args)
	if err != nil {
		return result, err
	}

	result.Conflicts = conflicts

	report, err := r.checker.Check(ctx, args.Check)
	if err != nil {
		return result, fmt.Errorf("check types: %w", err)
	}

	if report.Failed() {
		return result, errors.Wrapf(ErrIssuesFound, "%d issue(s) in %s", len(report.Issues), report.Root)
	}

	current, err := toolchain.CurrentVersion(ctx)
	if err != nil {
		return result, err
	}

	result.PreviousVersion = current

	if args.DryRun {
		next, err := NextVersion(current, args.Kind)
		if err != nil {
			return result, err
		}

		result.Version = next
		result.Changelog, err = r.renderChangelog(ctx, args.Changelog, next, args.Now)

		return result, err
	}

	step(StepRunTests)

	if err := toolchain.RunTests(ctx); err != nil {
		return result, err
	}

	step(StepBuild)

	if err := toolchain.Build(ctx); err != nil {
		return result, err
	}

	step(StepBumpVersion)

	next, err := toolchain.BumpVersion(ctx, args.Kind)
	if err != nil {
		return result, err
	}

	result.Version = next

	step(StepChangelog)

	result.Changelog, err = r.renderChangelog(ctx, args.Changelog, next, args.Now)
	if err != nil {
		return result, err
	}

	if err := r.fsAdapter.WriteFile(ctx, args.Changelog, []byte(result.Changelog), 0o644); err != nil {
		return result, fmt.Errorf("write changelog: %w", err)
	}

	step(StepCommit)

	if err := toolchain.Commit(ctx, next); err != nil {
		return result, err
	}

	step(StepPublish)

	if err := toolchain.Publish(ctx); err != nil {
		return result, err
	}

	step(StepTagAndPush)

	if err := toolchain.TagAndPush(ctx, next); err != nil {
		return result, err
	}

	return result, nil
}

// extractTypes regenerates the types documentation and collects conflicts.
// Conflicts only fail the release when the extraction asks for it. A dry run
// writes no documentation.
func (r *releaser) extractTypes(ctx context.Context, args ReleaseArgs) ([]m.ConflictRecord, error) {
	if args.Extract == nil {
		return nil, nil
	}

	extraction, err := r.extractor.Extract(ctx, *args.Extract)
	if err != nil {
		return nil, fmt.Errorf("extract types: %w", err)
	}

	if !args.DryRun {
		if err := writeTypesDoc(ctx, r.fsAdapter, args.Extract.DocsPath, extraction, args.Now); err != nil {
			return nil, err
		}
	}

	if len(extraction.Conflicts) > 0 {
		slog.Warn("type conflicts found", "conflicts", len(extraction.Conflicts))

		if args.Extract.FailOnConflict {
			return extraction.Conflicts, errors.Wrapf(ErrConflictsFound, "%d conflict(s)", len(extraction.Conflicts))
		}
	}

	return extraction.Conflicts, nil
}

func (r *releaser) validateState(ctx context.Context, toolchain Toolchain, branches []string) error {
	clean, err := toolchain.WorkingTreeClean(ctx)
	if err != nil {
		return fmt.Errorf("check working tree: %w", err)
	}

	if !clean {
		return errors.WithHint(ErrDirtyWorkingTree, "commit or stash changes before releasing")
	}

	if len(branches) == 0 {
		return nil
	}

	branch, err := toolchain.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("check current branch: %w", err)
	}

	if !slices.Contains(branches, branch) {
		return errors.WithHintf(
			errors.Wrapf(ErrReleaseBranch, "current branch %q", branch),
			"release from one of: %s", strings.Join(branches, ", "),
		)
	}

	return nil
}

func (r *releaser) renderChangelog(ctx context.Context, path m.Path, version string, now time.Time) (string, error) {
	exists, err := r.fsAdapter.Exists(ctx, path)
	if err != nil {
		return "", fmt.Errorf("stat changelog: %w", err)
	}

	content := ChangelogHeader

	if exists {
		data, err := r.fsAdapter.ReadFile(ctx, path)
		if err != nil {
			return "", fmt.Errorf("read changelog: %w", err)
		}

		content = string(data)
	}

	return InsertChangelogEntry(content, version, now), nil
}
