package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// buildInfo describes the running binary
type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"builtBy" yaml:"builtBy"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

var (
	versionInfo = buildInfo{
		Version: "dev",
		Commit:  "none",
		Date:    "unknown",
		BuiltBy: "unknown",
	}

	versionOutputFlag string
)

// SetVersionInfo sets the version information from main package
func SetVersionInfo(version, commit, date, builtBy string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.Date = date
	versionInfo.BuiltBy = builtBy
}

func currentBuildInfo() buildInfo {
	info := versionInfo
	info.GoVersion = runtime.Version()
	info.Platform = runtime.GOOS + "/" + runtime.GOARCH
	return info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information including version number, commit hash, build date, and Go version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentBuildInfo()
		// Configured default output format does not apply here
		format := versionOutputFlag
		if format == "" {
			format = outputText
		}
		return writeOutput(cmd.OutOrStdout(), format, info, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "azdo %s\nCommit:     %s\nBuilt:      %s\nBuilt by:   %s\nGo version: %s\nOS/Arch:    %s\n",
				info.Version, info.Commit, info.Date, info.BuiltBy, info.GoVersion, info.Platform)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionOutputFlag, "output", "o", "", "Output format (text, json, yaml)")
}
