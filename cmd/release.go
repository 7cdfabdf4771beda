package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"typelint.dev/pkg/typelint/internal/domain"
	m "typelint.dev/pkg/typelint/internal/model"
)

const releaseLongDescription = `Release the shared types package.

The release validates that the working tree is clean and on a release
branch, extracts the backend and frontend types (regenerating the types
documentation and reporting conflicts), runs the consistency check, tests
and builds the package, bumps the version in package.json, prepends a
changelog section, commits, publishes and finally tags and pushes. Every
external step runs the command lines configured under release.commands in
typelint.yaml. Check and extract paths are resolved against the package
directory.

KIND is one of major, minor, patch, premajor, preminor, prepatch or
prerelease (default: patch). With --dry-run the release stops after
printing the next version and the changelog it would write.`

var releaseDryRunFlag bool
var releasePackageDirFlag string
var releaseChangelogFlag string

// releaseCmd represents the release command.
var releaseCmd = newReleaseCmd()

func newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "release [kind]",
		Short:     "Version, build and publish the types package",
		Long:      releaseLongDescription,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: releaseKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.ReleasePatch
			if len(args) > 0 {
				parsed, err := domain.ParseReleaseKind(args[0])
				if err != nil {
					return err
				}

				kind = parsed
			}

			output, err := outputArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Release(cmd.Context(), releaseArgsFromConfig(kind, releaseDryRunFlag), output)
		},
	}

	configureReleaseFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}

func configureReleaseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&releaseDryRunFlag, dryRunFlagName, false, "compute the version and changelog without changing anything")

	cmd.Flags().StringVar(&releasePackageDirFlag, packageDirFlagName, viper.GetString(releasePackageDirKey), "directory holding package.json")
	bindFlagToConfig(cmd.Flags().Lookup(packageDirFlagName), releasePackageDirKey)

	cmd.Flags().StringVar(&releaseChangelogFlag, changelogFlagName, viper.GetString(releaseChangelogKey), "changelog path relative to the package directory")
	bindFlagToConfig(cmd.Flags().Lookup(changelogFlagName), releaseChangelogKey)
}

func releaseKindNames() []string {
	names := make([]string, 0, len(domain.ReleaseKinds))
	for _, kind := range domain.ReleaseKinds {
		names = append(names, string(kind))
	}

	return names
}

func releaseArgsFromConfig(kind domain.ReleaseKind, dryRun bool) domain.ReleaseArgs {
	packageDir := viper.GetString(releasePackageDirKey)

	changelog := viper.GetString(releaseChangelogKey)
	if !filepath.IsAbs(changelog) {
		changelog = filepath.Join(packageDir, changelog)
	}

	check := checkArgsFromConfig(nil)
	check.Root = inPackageDir(packageDir, check.Root)

	extract := extractArgsFromConfig()
	extract.TreeA.Root = inPackageDir(packageDir, extract.TreeA.Root)
	extract.TreeB.Root = inPackageDir(packageDir, extract.TreeB.Root)

	if extract.DocsPath != "" {
		extract.DocsPath = inPackageDir(packageDir, extract.DocsPath)
	}

	return domain.ReleaseArgs{
		Kind:       kind,
		DryRun:     dryRun,
		PackageDir: packageDir,
		Commands:   releaseCommandsFromConfig(),
		Branches:   viper.GetStringSlice(releaseBranchesKey),
		Changelog:  m.Path(changelog),
		Check:      check,
		Extract:    &extract,
	}
}

// inPackageDir resolves a configured path against the package directory.
func inPackageDir(packageDir string, path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return path
	}

	return m.Path(filepath.Join(packageDir, string(path)))
}
