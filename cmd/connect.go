package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/casey/azdo/internal/auth"
	"github.com/casey/azdo/internal/azdourl"
	"github.com/casey/azdo/internal/config"
	"github.com/casey/azdo/internal/connection"
	"github.com/casey/azdo/internal/tui"
)

var (
	connectHeaderFlags []string
	connectOutputFlag  string

	connectCmd = &cobra.Command{
		Use:   "connect [url]",
		Short: "Build connection settings",
		Long: `Build connection settings for an organization or project.

The URL defaults to the configured organization and project. The stored
Personal Access Token and configured headers are included; the token is
masked in the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConnect,
	}
)

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().StringArrayVarP(&connectHeaderFlags, "header", "H", nil, "Extra HTTP header as Name=Value (repeatable)")
	connectCmd.Flags().StringVarP(&connectOutputFlag, "output", "o", "", "Output format (text, json, yaml)")
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rawURL, err := resolveConnectURL(args, cfg)
	if err != nil {
		return err
	}

	headers, err := parseHeaderFlags(connectHeaderFlags)
	if err != nil {
		return err
	}

	d := azdourl.Parse(rawURL)
	if !d.IsValid() {
		return fmt.Errorf("%w: %q", connection.ErrUnrecognizedURL, rawURL)
	}

	// Token is optional: connection settings are still useful without one
	token, err := auth.GetToken(d.OrganizationName)
	if err != nil {
		slog.Debug("no stored token", "organization", d.OrganizationName, "error", err)
		token = ""
	}

	conn := connection.FromDescriptor(d, token,
		connection.WithHeaders(cfg.Headers),
		connection.WithHeaders(headers),
	)

	summary := conn.Summary()
	return writeOutput(cmd.OutOrStdout(), outputFormat(connectOutputFlag), summary, func(w io.Writer) error {
		return writeSummaryText(w, summary)
	})
}

// resolveConnectURL picks the URL argument, or builds one from the
// configured organization (name or URL) and project
func resolveConnectURL(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	org := viper.GetString("organization")
	if org == "" {
		org = cfg.Organization
	}
	if org == "" {
		return "", fmt.Errorf("organization not configured. Run 'azdo config set organization <org>' or pass a URL")
	}

	project := viper.GetString("project")
	if project == "" {
		project = cfg.Project
	}

	rawURL := organizationURL(org)
	if project != "" {
		rawURL = strings.TrimSuffix(rawURL, "/") + "/" + project
	}

	return rawURL, nil
}

// parseHeaderFlags turns Name=Value pairs into a map
func parseHeaderFlags(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, v := range values {
		name, value, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected Name=Value", v)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

func writeSummaryText(w io.Writer, s connection.Summary) error {
	fields := []tui.Field{
		{Label: "Organization", Value: s.OrganizationName},
		{Label: "Project", Value: s.ProjectName},
		{Label: "Organization URL", Value: s.OrganizationURL},
		{Label: "Project URL", Value: s.ProjectURL},
		{Label: "Release Management URL", Value: s.ReleaseManagementURL},
		{Label: "Token", Value: s.PAT},
		{Label: "Created", Value: s.CreatedOn.Format("2006-01-02 15:04:05 MST")},
	}
	for _, name := range s.HeaderNames() {
		fields = append(fields, tui.Field{Label: "Header " + name, Value: s.Headers[name]})
	}

	body := tui.RenderTitle("Connection") + "\n\n" + tui.RenderFields(fields)
	if s.PAT == "" {
		body += "\n\n" + tui.RenderWarning("⚠ No token stored. Run 'azdo auth login'")
	}

	_, err := fmt.Fprintln(w, tui.RenderInBox(body))
	return err
}
