package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"typelint.dev/pkg/typelint/internal/adapter"
	m "typelint.dev/pkg/typelint/internal/model"
)

// Toolchain is the external build and publishing collaborator a release drives.
type Toolchain interface {
	WorkingTreeClean(ctx context.Context) (bool, error)
	CurrentBranch(ctx context.Context) (string, error)
	CurrentVersion(ctx context.Context) (string, error)
	RunTests(ctx context.Context) error
	Build(ctx context.Context) error
	BumpVersion(ctx context.Context, kind ReleaseKind) (string, error)
	Commit(ctx context.Context, version string) error
	Publish(ctx context.Context) error
	TagAndPush(ctx context.Context, version string) error
}

// ReleaseCommands holds the command lines run for each toolchain step. A step
// may run several commands in order. The placeholders {version} and {message}
// expand to single shell words.
type ReleaseCommands struct {
	Status  []string
	Branch  []string
	Test    []string
	Clean   []string
	Build   []string
	Commit  []string
	Tag     []string
	Whoami  []string
	Publish []string
	Push    []string
}

// DefaultReleaseCommands mirror the npm and git invocations of a typical
// TypeScript package release.
func DefaultReleaseCommands() ReleaseCommands {
	return ReleaseCommands{
		Status:  []string{"git status --porcelain"},
		Branch:  []string{"git branch --show-current"},
		Test:    []string{"npm test"},
		Clean:   []string{"npm run clean"},
		Build:   []string{"npm run build"},
		Commit:  []string{"git add .", "git commit -m {message}"},
		Tag:     []string{`git tag -a v{version} -m "Release version {version}"`},
		Whoami:  []string{"npm whoami"},
		Publish: []string{"npm publish"},
		Push:    []string{"git push origin HEAD", "git push origin --tags"},
	}
}

const packageManifest = "package.json"

// ToolchainFactory builds the Toolchain for one release.
type ToolchainFactory func(packageDir string, commands ReleaseCommands) Toolchain

// CommandToolchainFactory returns a factory for command-backed toolchains.
func CommandToolchainFactory(fsAdapter adapter.SourceFSAdapter, runner adapter.CommandRunnerAdapter) ToolchainFactory {
	return func(packageDir string, commands ReleaseCommands) Toolchain {
		return NewCommandToolchain(fsAdapter, runner, packageDir, commands)
	}
}

type commandToolchain struct {
	fsAdapter  adapter.SourceFSAdapter
	runner     adapter.CommandRunnerAdapter
	packageDir string
	commands   ReleaseCommands
}

// NewCommandToolchain constructs a Toolchain that runs configured commands in
// packageDir and edits packageDir/package.json in place.
func NewCommandToolchain(
	fsAdapter adapter.SourceFSAdapter,
	runner adapter.CommandRunnerAdapter,
	packageDir string,
	commands ReleaseCommands,
) Toolchain {
	return &commandToolchain{
		fsAdapter:  fsAdapter,
		runner:     runner,
		packageDir: packageDir,
		commands:   commands,
	}
}

func (t *commandToolchain) run(ctx context.Context, step string, commands []string, vars map[string]string) (string, error) {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", shellquote.Join(value))
	}

	replacer := strings.NewReplacer(pairs...)

	var output string

	for _, command := range commands {
		line := replacer.Replace(command)
		slog.Debug("running release command", "step", step, "command", line)

		out, err := t.runner.Run(ctx, t.packageDir, line)
		if err != nil {
			slog.Error("release command failed", "step", step, "command", line, "output", out, "error", err)
			return out, fmt.Errorf("%s: %w", step, err)
		}

		output = out
	}

	return output, nil
}

func (t *commandToolchain) WorkingTreeClean(ctx context.Context) (bool, error) {
	out, err := t.run(ctx, "status", t.commands.Status, nil)
	if err != nil {
		return false, err
	}

	return strings.TrimSpace(out) == "", nil
}

func (t *commandToolchain) CurrentBranch(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "branch", t.commands.Branch, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

func (t *commandToolchain) RunTests(ctx context.Context) error {
	_, err := t.run(ctx, "test", t.commands.Test, nil)
	return err
}

func (t *commandToolchain) Build(ctx context.Context) error {
	if _, err := t.run(ctx, "clean", t.commands.Clean, nil); err != nil {
		return err
	}

	_, err := t.run(ctx, "build", t.commands.Build, nil)

	return err
}

func (t *commandToolchain) manifestPath(ctx context.Context) m.Path {
	return t.fsAdapter.JoinPath(ctx, t.packageDir, packageManifest)
}

func (t *commandToolchain) CurrentVersion(ctx context.Context) (string, error) {
	path := t.manifestPath(ctx)

	data, err := t.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return "", errors.WithHint(
			errors.Wrapf(err, "read %s", path),
			"set release.package_dir to the directory holding package.json",
		)
	}

	version := gjson.GetBytes(data, "version")
	if !version.Exists() || version.String() == "" {
		return "", errors.Newf("%s has no version field", path)
	}

	return version.String(), nil
}

// BumpVersion rewrites only the version value, keeping the rest of the
// manifest byte for byte.
func (t *commandToolchain) BumpVersion(ctx context.Context, kind ReleaseKind) (string, error) {
	current, err := t.CurrentVersion(ctx)
	if err != nil {
		return "", err
	}

	next, err := NextVersion(current, kind)
	if err != nil {
		return "", err
	}

	path := t.manifestPath(ctx)

	data, err := t.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	updated, err := sjson.SetBytes(data, "version", next)
	if err != nil {
		return "", fmt.Errorf("set version in %s: %w", path, err)
	}

	info, err := t.fsAdapter.FileInfo(ctx, path)
	perm := os.FileMode(0o644)

	if err == nil {
		perm = info.Mode().Perm()
	}

	if err := t.fsAdapter.WriteFile(ctx, path, updated, perm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("bumped package version", "from", current, "to", next, "kind", kind)

	return next, nil
}

func (t *commandToolchain) Commit(ctx context.Context, version string) error {
	_, err := t.run(ctx, "commit", t.commands.Commit, map[string]string{
		"version": version,
		"message": "chore: release version " + version,
	})

	return err
}

func (t *commandToolchain) Publish(ctx context.Context) error {
	if _, err := t.run(ctx, "whoami", t.commands.Whoami, nil); err != nil {
		return errors.WithHint(err, `log in to the registry with "npm login" first`)
	}

	_, err := t.run(ctx, "publish", t.commands.Publish, nil)

	return err
}

func (t *commandToolchain) TagAndPush(ctx context.Context, version string) error {
	vars := map[string]string{"version": version}

	if _, err := t.run(ctx, "tag", t.commands.Tag, vars); err != nil {
		return err
	}

	_, err := t.run(ctx, "push", t.commands.Push, vars)

	return err
}
