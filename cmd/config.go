package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/casey/azdo/internal/azdourl"
	"github.com/casey/azdo/internal/config"
	"github.com/casey/azdo/internal/tui"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View and modify azdo configuration.`,
	}

	configGetCmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long:  `Get the value of a configuration key.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set the value of a configuration key (organization, project, output, headers.<Name>).`,
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	configListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all configuration",
		Long:  `Display all configuration values.`,
		RunE:  runConfigList,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := viper.Get(key)

	if value == nil {
		fmt.Printf("%s is not set\n", key)
		return nil
	}

	fmt.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Load current config
	cfg, err := config.Load()
	if err != nil {
		// Create new config if it doesn't exist
		cfg = &config.Config{}
	}

	// Update the specific field based on key
	switch key {
	case "organization":
		cfg.Organization = value
	case "project":
		cfg.Project = value
	case "output":
		if value != outputText && value != outputJSON && value != outputYAML {
			return fmt.Errorf("unsupported output format %q (use text, json or yaml)", value)
		}
		cfg.Output = value
	default:
		name, ok := strings.CutPrefix(key, "headers.")
		if !ok || name == "" {
			return fmt.Errorf("unknown configuration key %q", key)
		}
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		cfg.Headers[name] = value
	}

	// Save config
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Set %s = %s\n", key, value)

	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  organization:  %s\n", cfg.Organization)
	fmt.Fprintf(out, "  project:       %s\n", cfg.Project)
	fmt.Fprintf(out, "  output:        %s\n", cfg.Output)
	for name, value := range cfg.Headers {
		fmt.Fprintf(out, "  headers.%s: %s\n", name, value)
	}

	if cfg.Organization == "" {
		return nil
	}

	rawURL, err := resolveConnectURL(nil, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderDescriptor(azdourl.Parse(rawURL)))

	return nil
}
