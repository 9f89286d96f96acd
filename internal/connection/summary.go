package connection

import (
	"sort"
	"strings"
	"time"
)

const maskVisible = 4

// Summary is a printable view of a Connection with secrets masked
type Summary struct {
	OrganizationName     string            `json:"organizationName" yaml:"organizationName"`
	ProjectName          string            `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	OrganizationURL      string            `json:"organizationUrl" yaml:"organizationUrl"`
	ProjectURL           string            `json:"projectUrl,omitempty" yaml:"projectUrl,omitempty"`
	ReleaseManagementURL string            `json:"releaseManagementUrl" yaml:"releaseManagementUrl"`
	PAT                  string            `json:"pat,omitempty" yaml:"pat,omitempty"`
	Headers              map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	CreatedOn            time.Time         `json:"createdOn" yaml:"createdOn"`
}

// Summary returns the masked view of the connection
func (c *Connection) Summary() Summary {
	s := Summary{
		OrganizationName:     c.OrganizationName(),
		ProjectName:          c.ProjectName(),
		OrganizationURL:      c.OrganizationURL(),
		ProjectURL:           c.ProjectURL(),
		ReleaseManagementURL: c.ReleaseManagementURL(),
		PAT:                  Mask(c.pat),
		CreatedOn:            c.createdOn,
	}

	if len(c.headers) > 0 {
		s.Headers = make(map[string]string, len(c.headers))
		for name, value := range c.headers {
			if name == "Authorization" {
				value = maskAuthorization(value)
			}
			s.Headers[name] = value
		}
	}

	return s
}

// HeaderNames returns the header names in sorted order
func (s Summary) HeaderNames() []string {
	names := make([]string, 0, len(s.Headers))
	for name := range s.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mask hides all but the last few characters of a secret
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= maskVisible {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-maskVisible) + secret[len(secret)-maskVisible:]
}

// maskAuthorization keeps the scheme ("Basic", "Bearer") and masks the credential
func maskAuthorization(value string) string {
	scheme, cred, ok := strings.Cut(value, " ")
	if !ok {
		return Mask(value)
	}
	return scheme + " " + Mask(cred)
}
