package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the typelint build version",
		Long: `Print the typelint module version recorded at build time, the Go toolchain
that compiled it and, when available, the VCS revision it was built from.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("typelint version unknown")
				return
			}

			cmd.Printf("typelint %s\n", info.Main.Version)
			cmd.Printf("built with %s\n", info.GoVersion)

			if revision := buildSetting(info, "vcs.revision"); revision != "" {
				cmd.Printf("revision %s\n", revision)
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}
