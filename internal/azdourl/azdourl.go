// Package azdourl recognizes Azure DevOps organization and project URLs and
// rewrites them to their canonical dev.azure.com form.
//
// Two URL families are accepted:
//
//	https://{org}.visualstudio.com[/{project}]
//	https://dev.azure.com/{org}[/{project}]
//
// Anything else parses to an empty Descriptor. Callers detect invalid input
// with Descriptor.IsValid rather than an error.
package azdourl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// ModernHost is the host every canonical URL is built on
	ModernHost = "dev.azure.com"

	// ReleaseManagementHost serves the release management APIs of an organization
	ReleaseManagementHost = "vsrm.dev.azure.com"
)

var (
	// Organizations are plain labels: no dots, userinfo or port. The default
	// https port is the only one accepted on either host.
	classicPattern = regexp.MustCompile(`^(?i:https://)([^./?#\s@:]+)(?i:\.visualstudio\.com)(?::443)?(?:/([^/?#]*))?(?:[/?#].*)?$`)
	modernPattern  = regexp.MustCompile(`^(?i:https://dev\.azure\.com)(?::443)?/([^/?#\s@:]+)(?:/([^/?#]*))?(?:[/?#].*)?$`)
)

// Descriptor is the result of parsing an Azure DevOps URL
type Descriptor struct {
	OrganizationName string `json:"organizationName" yaml:"organizationName"`
	ProjectName      string `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	OrganizationURL  string `json:"organizationUrl" yaml:"organizationUrl"`
	ProjectURL       string `json:"projectUrl,omitempty" yaml:"projectUrl,omitempty"`
}

// Parse classifies rawURL and extracts the organization and optional project.
// An unrecognized URL yields the zero Descriptor.
func Parse(rawURL string) Descriptor {
	rawURL = strings.TrimSpace(rawURL)
	if !utf8.ValidString(rawURL) {
		return Descriptor{}
	}

	var org, project string
	if m := modernPattern.FindStringSubmatch(rawURL); m != nil {
		org, project = m[1], m[2]
	} else if m := classicPattern.FindStringSubmatch(rawURL); m != nil {
		org, project = m[1], m[2]
	} else {
		return Descriptor{}
	}

	// Route segments like _settings or _git are not projects
	if strings.HasPrefix(project, "_") {
		project = ""
	}

	return build(org, project)
}

func build(org, project string) Descriptor {
	d := Descriptor{
		OrganizationName: org,
		OrganizationURL:  fmt.Sprintf("https://%s/%s", ModernHost, org),
	}

	if project != "" {
		d.ProjectName = project
		// The organization segment of project URLs is capitalized while
		// OrganizationURL keeps the input case. Consumers rely on both forms.
		d.ProjectURL = fmt.Sprintf("https://%s/%s/%s", ModernHost, upperFirst(org), project)
	}

	return d
}

// upperFirst upper-cases the first letter of s, skipping any leading
// digits or symbols, so "3pager" becomes "3Pager".
func upperFirst(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}

// IsValid reports whether the URL was recognized
func (d Descriptor) IsValid() bool {
	return d.OrganizationName != ""
}

// HasProject reports whether the URL named a project
func (d Descriptor) HasProject() bool {
	return d.ProjectName != ""
}

// ReleaseManagementURL returns the release management endpoint of the
// organization, or "" for an invalid descriptor.
func (d Descriptor) ReleaseManagementURL() string {
	if !d.IsValid() {
		return ""
	}
	return fmt.Sprintf("https://%s/%s", ReleaseManagementHost, d.OrganizationName)
}

// Equivalent reports whether two descriptors name the same organization and
// project. Organization names are case-insensitive in Azure DevOps.
func (d Descriptor) Equivalent(other Descriptor) bool {
	if !strings.EqualFold(d.OrganizationName, other.OrganizationName) {
		return false
	}
	if d.ProjectName != other.ProjectName {
		return false
	}
	return strings.EqualFold(d.OrganizationURL, other.OrganizationURL) &&
		d.ProjectURL == other.ProjectURL
}
