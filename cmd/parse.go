package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/casey/azdo/internal/azdourl"
	"github.com/casey/azdo/internal/connection"
	"github.com/casey/azdo/internal/tui"
)

var (
	parseOutputFlag string

	parseCmd = &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse an Azure DevOps URL",
		Long: `Parse an organization or project URL and print the canonical names and URLs.

Accepted forms:
  https://{org}.visualstudio.com[/{project}]
  https://dev.azure.com/{org}[/{project}]`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutputFlag, "output", "o", "", "Output format (text, json, yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	d := azdourl.Parse(args[0])
	slog.Debug("parsed url", "input", args[0], "organization", d.OrganizationName, "project", d.ProjectName)

	if !d.IsValid() {
		return fmt.Errorf("%w: %q", connection.ErrUnrecognizedURL, args[0])
	}

	return writeOutput(cmd.OutOrStdout(), outputFormat(parseOutputFlag), d, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, tui.RenderDescriptor(d))
		return err
	})
}
