package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/casey/azdo/internal/auth"
	"github.com/casey/azdo/internal/connection"
	"github.com/casey/azdo/internal/tui"
)

var (
	patFlag string

	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long: `Store Personal Access Tokens (PAT) for Azure DevOps organizations.

Tokens are stored per organization (--org or the configured organization).
Without an organization the token becomes the default for every organization
that has none of its own.`,
	}

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Store a token for an organization",
		Long:  `Store a Personal Access Token for the selected organization, or the default token.`,
		RunE:  runLogin,
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Remove the token for an organization",
		Long:  `Remove the stored token for the selected organization, or the default token.`,
		RunE:  runLogout,
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show stored tokens",
		Long:  `List the organizations with a stored token and the token the selected organization would use.`,
		RunE:  runStatus,
	}
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)

	loginCmd.Flags().StringVar(&patFlag, "pat", "", "Personal Access Token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	org := configuredOrganization()
	out := cmd.OutOrStdout()

	var token string
	if patFlag != "" {
		token = patFlag
	} else {
		fmt.Fprintln(out, "Enter your Personal Access Token (PAT):")
		fmt.Fprintf(out, "You can create a PAT at: %s\n", tokenSettingsURL())
		fmt.Fprint(out, "PAT: ")

		// Read password from terminal without echoing
		bytePwd, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		fmt.Fprintln(out)

		token = strings.TrimSpace(string(bytePwd))
	}

	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := auth.SaveToken(org.OrganizationName, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Fprintln(out, tui.RenderSuccess("✓ Token saved: "+tokenOwner(org.OrganizationName)))

	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	org := configuredOrganization().OrganizationName
	out := cmd.OutOrStdout()

	path, err := auth.GetTokenPath(org)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "No token stored: %s\n", tokenOwner(org))
		return nil
	}

	// Confirm logout
	fmt.Fprintf(out, "Remove token (%s)? (y/N): ", tokenOwner(org))
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(out, "Logout cancelled")
		return nil
	}

	if err := auth.Logout(org); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	fmt.Fprintln(out, tui.RenderSuccess("✓ Token removed: "+tokenOwner(org)))

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	orgs, err := auth.Organizations()
	if err != nil {
		return err
	}

	fields := make([]tui.Field, 0, len(orgs)+1)
	for _, org := range orgs {
		token, _ := auth.GetToken(org)
		fields = append(fields, tui.Field{Label: org, Value: connection.Mask(token)})
	}
	if auth.HasDefault() {
		token, _ := auth.GetToken("")
		fields = append(fields, tui.Field{Label: "(default)", Value: connection.Mask(token)})
	}

	if len(fields) == 0 {
		fmt.Fprintln(out, tui.RenderError("✗ Not authenticated"))
		fmt.Fprintln(out, "Run 'azdo auth login' to authenticate")
		return nil
	}

	fmt.Fprintln(out, tui.RenderTitle("Stored tokens"))
	fmt.Fprintln(out, tui.RenderFields(fields))

	if d := configuredOrganization(); d.IsValid() && !auth.IsAuthenticated(d.OrganizationName) {
		fmt.Fprintln(out, tui.RenderWarning("⚠ No token available for "+d.OrganizationName))
	}

	return nil
}

// tokenOwner names whose token a command acts on
func tokenOwner(org string) string {
	if org == "" {
		return "default"
	}
	return "organization " + org
}

// tokenSettingsURL points at the PAT page of the configured organization
func tokenSettingsURL() string {
	if d := configuredOrganization(); d.IsValid() {
		return d.OrganizationURL + "/_usersSettings/tokens"
	}
	return "https://dev.azure.com/{org}/_usersSettings/tokens"
}
