package cmd

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/casey/azdo/internal/azdourl"
)

// organizationURL turns a configured organization, either a bare name or a
// URL, into a URL azdourl.Parse accepts. Empty stays empty.
func organizationURL(org string) string {
	org = strings.TrimSpace(org)
	if org == "" || strings.Contains(org, "://") {
		return org
	}
	return "https://" + azdourl.ModernHost + "/" + strings.Trim(org, "/")
}

// configuredOrganization parses the organization from --org or the config
func configuredOrganization() azdourl.Descriptor {
	return azdourl.Parse(organizationURL(viper.GetString("organization")))
}
