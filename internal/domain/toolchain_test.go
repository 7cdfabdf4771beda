package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"typelint.dev/pkg/typelint/internal/adapter"
	adaptermocks "typelint.dev/pkg/typelint/internal/adapter/mocks"
	"typelint.dev/pkg/typelint/internal/domain"
)

const manifest = `{
  "name": "@acme/shared-types",
  "version": "1.4.2",
  "scripts": {
    "build": "tsc"
  }
}
`

func newToolchainFixture(t *testing.T) (domain.Toolchain, *adaptermocks.MockCommandRunnerAdapter, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0o600))

	runner := adaptermocks.NewMockCommandRunnerAdapter(t)
	toolchain := domain.NewCommandToolchain(adapter.NewLocalSourceFSAdapter(), runner, dir, domain.DefaultReleaseCommands())

	return toolchain, runner, dir
}

func TestCommandToolchain_BumpVersion(t *testing.T) {
	toolchain, _, dir := newToolchainFixture(t)

	current, err := toolchain.CurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", current)

	next, err := toolchain.BumpVersion(context.Background(), domain.ReleaseMinor)
	require.NoError(t, err)
	assert.Equal(t, "1.5.0", next)

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, `{
  "name": "@acme/shared-types",
  "version": "1.5.0",
  "scripts": {
    "build": "tsc"
  }
}
`, string(data))

	info, err := os.Stat(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCommandToolchain_MissingManifest(t *testing.T) {
	runner := adaptermocks.NewMockCommandRunnerAdapter(t)
	toolchain := domain.NewCommandToolchain(adapter.NewLocalSourceFSAdapter(), runner, t.TempDir(), domain.DefaultReleaseCommands())

	_, err := toolchain.CurrentVersion(context.Background())
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "release.package_dir")
}

func TestCommandToolchain_ManifestWithoutVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0o600))

	runner := adaptermocks.NewMockCommandRunnerAdapter(t)
	toolchain := domain.NewCommandToolchain(adapter.NewLocalSourceFSAdapter(), runner, dir, domain.DefaultReleaseCommands())

	_, err := toolchain.CurrentVersion(context.Background())
	assert.ErrorContains(t, err, "has no version field")
}

func TestCommandToolchain_State(t *testing.T) {
	toolchain, runner, dir := newToolchainFixture(t)

	runner.On("Run", mock.Anything, dir, "git status --porcelain").Return(" M src/index.ts\n", nil).Once()
	runner.On("Run", mock.Anything, dir, "git branch --show-current").Return("main\n", nil).Once()

	clean, err := toolchain.WorkingTreeClean(context.Background())
	require.NoError(t, err)
	assert.False(t, clean)

	branch, err := toolchain.CurrentBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestCommandToolchain_CommitAndTag(t *testing.T) {
	toolchain, runner, dir := newToolchainFixture(t)

	runner.On("Run", mock.Anything, dir, "git add .").Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git commit -m 'chore: release version 1.5.0'").Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, `git tag -a v1.5.0 -m "Release version 1.5.0"`).Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git push origin HEAD").Return("", nil).Once()
	runner.On("Run", mock.Anything, dir, "git push origin --tags").Return("", nil).Once()

	require.NoError(t, toolchain.Commit(context.Background(), "1.5.0"))
	require.NoError(t, toolchain.TagAndPush(context.Background(), "1.5.0"))
}

func TestCommandToolchain_BuildStopsOnFailure(t *testing.T) {
	toolchain, runner, dir := newToolchainFixture(t)

	runner.On("Run", mock.Anything, dir, "npm run clean").Return("missing script: clean", errors.New("exit status 1")).Once()

	err := toolchain.Build(context.Background())
	assert.ErrorContains(t, err, "clean: exit status 1")
}

func TestCommandToolchain_PublishRequiresLogin(t *testing.T) {
	toolchain, runner, dir := newToolchainFixture(t)

	runner.On("Run", mock.Anything, dir, "npm whoami").Return("", errors.New("exit status 1")).Once()

	err := toolchain.Publish(context.Background())
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "npm login")
}

func TestCommandToolchain_TestsAndPublish(t *testing.T) {
	toolchain, runner, dir := newToolchainFixture(t)

	runner.On("Run", mock.Anything, dir, "npm test").Return("ok", nil).Once()
	runner.On("Run", mock.Anything, dir, "npm whoami").Return("acme", nil).Once()
	runner.On("Run", mock.Anything, dir, "npm publish").Return("", nil).Once()

	require.NoError(t, toolchain.RunTests(context.Background()))
	require.NoError(t, toolchain.Publish(context.Background()))
}
