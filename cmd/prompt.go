package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/azdo/internal/config"
	"github.com/casey/azdo/internal/tui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [url]",
	Short: "Enter an Azure DevOps URL interactively",
	Long: `Open an interactive prompt that previews how a URL is parsed while you type.
Pressing Enter on a recognized URL saves its organization and project to the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	var initial string
	if len(args) > 0 {
		initial = args[0]
	}

	d, err := tui.RunURLPrompt(initial)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	cfg.Organization = d.OrganizationURL
	cfg.Project = d.ProjectName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess("✓ Saved "+d.OrganizationURL))
	return nil
}
