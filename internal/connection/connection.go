// Package connection holds the settings needed to talk to an Azure DevOps
// organization: canonical URLs, the personal access token, extra HTTP
// headers and the time the connection was created.
package connection

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/microsoft/azure-devops-go-api/azuredevops"

	"github.com/casey/azdo/internal/azdourl"
)

// ErrUnrecognizedURL is returned when the URL is not an Azure DevOps
// organization or project URL
var ErrUnrecognizedURL = errors.New("unrecognized Azure DevOps URL")

// Connection is an immutable set of connection settings
type Connection struct {
	descriptor azdourl.Descriptor
	pat        string
	headers    map[string]string
	createdOn  time.Time
}

// Option configures a Connection at construction time
type Option func(*options)

type options struct {
	headers map[string]string
	now     func() time.Time
}

// WithHeaders adds extra HTTP headers. The map is copied.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		for name, value := range headers {
			o.headers[http.CanonicalHeaderKey(name)] = value
		}
	}
}

// WithClock overrides the clock used for CreatedOn
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New parses rawURL and builds a connection for it
func New(rawURL, pat string, opts ...Option) (*Connection, error) {
	d := azdourl.Parse(rawURL)
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedURL, rawURL)
	}

	return FromDescriptor(d, pat, opts...), nil
}

// FromDescriptor builds a connection from an already parsed descriptor
func FromDescriptor(d azdourl.Descriptor, pat string, opts ...Option) *Connection {
	o := options{
		headers: make(map[string]string),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	pat = strings.TrimSpace(pat)
	if _, ok := o.headers["Authorization"]; !ok && pat != "" {
		o.headers["Authorization"] = azuredevops.CreateBasicAuthHeaderValue("", pat)
	}

	return &Connection{
		descriptor: d,
		pat:        pat,
		headers:    o.headers,
		createdOn:  o.now(),
	}
}

// Descriptor returns the parsed URL descriptor
func (c *Connection) Descriptor() azdourl.Descriptor {
	return c.descriptor
}

// OrganizationName returns the short organization name
func (c *Connection) OrganizationName() string {
	return c.descriptor.OrganizationName
}

// OrganizationURL returns the canonical organization URL
func (c *Connection) OrganizationURL() string {
	return c.descriptor.OrganizationURL
}

// ProjectName returns the project name, if any
func (c *Connection) ProjectName() string {
	return c.descriptor.ProjectName
}

// ProjectURL returns the canonical project URL, if any
func (c *Connection) ProjectURL() string {
	return c.descriptor.ProjectURL
}

// ReleaseManagementURL returns the release management endpoint
func (c *Connection) ReleaseManagementURL() string {
	return c.descriptor.ReleaseManagementURL()
}

// PAT returns the personal access token
func (c *Connection) PAT() string {
	return c.pat
}

// Headers returns a copy of the HTTP headers
func (c *Connection) Headers() map[string]string {
	return maps.Clone(c.headers)
}

// CreatedOn returns when the connection was constructed
func (c *Connection) CreatedOn() time.Time {
	return c.createdOn
}

// SDKConnection returns an Azure DevOps SDK connection for the organization.
// Building it does not contact the service.
func (c *Connection) SDKConnection() *azuredevops.Connection {
	conn := azuredevops.NewPatConnection(c.descriptor.OrganizationURL, c.pat)
	if auth, ok := c.headers["Authorization"]; ok {
		conn.AuthorizationString = auth
	}
	return conn
}
