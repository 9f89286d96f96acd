// Package auth stores Personal Access Tokens per Azure DevOps organization.
//
// Tokens live under $HOME/.azdo/tokens, one file per organization, named by
// the lower-cased organization name since organization names are
// case-insensitive. A token saved without an organization is the default
// and is used for any organization that has no token of its own.
package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/casey/azdo/internal/config"
)

const (
	tokensDirName    = "tokens"
	defaultTokenName = "_default"
)

// ErrNotAuthenticated is returned when no token is stored for an organization
var ErrNotAuthenticated = errors.New("not authenticated. Run 'azdo auth login' to authenticate")

// TokensDir returns the directory holding token files, creating it if needed
func TokensDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, config.DirName, tokensDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create tokens directory: %w", err)
	}

	return dir, nil
}

// tokenFileName maps an organization to its token file name. An empty
// organization selects the default token.
func tokenFileName(org string) (string, error) {
	org = strings.ToLower(strings.TrimSpace(org))
	if org == "" {
		return defaultTokenName, nil
	}
	if org == "." || org == ".." || strings.HasPrefix(org, "_") || strings.ContainsAny(org, `/\`) {
		return "", fmt.Errorf("invalid organization name %q", org)
	}
	return org, nil
}

// GetTokenPath returns the token file path for an organization
func GetTokenPath(org string) (string, error) {
	name, err := tokenFileName(org)
	if err != nil {
		return "", err
	}

	dir, err := TokensDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

// SaveToken stores the token for an organization, or the default token when
// org is empty
func SaveToken(org, token string) error {
	tokenPath, err := GetTokenPath(org)
	if err != nil {
		return err
	}

	// Owner read/write only
	if err := os.WriteFile(tokenPath, []byte(strings.TrimSpace(token)), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// GetToken returns the token for an organization, falling back to the
// default token
func GetToken(org string) (string, error) {
	token, err := readToken(org)
	if errors.Is(err, ErrNotAuthenticated) && strings.TrimSpace(org) != "" {
		return readToken("")
	}
	return token, err
}

func readToken(org string) (string, error) {
	tokenPath, err := GetTokenPath(org)
	if err != nil {
		return "", err
	}

	tokenBytes, err := os.ReadFile(tokenPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", fmt.Errorf("token file for %s is empty. Run 'azdo auth login' to authenticate", describe(org))
	}

	return token, nil
}

// IsAuthenticated reports whether a token is available for the organization
func IsAuthenticated(org string) bool {
	_, err := GetToken(org)
	return err == nil
}

// Logout removes the token stored for exactly this organization
func Logout(org string) error {
	tokenPath, err := GetTokenPath(org)
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no token stored for %s", describe(org))
		}
		return fmt.Errorf("failed to remove token: %w", err)
	}

	return nil
}

// Organizations lists organizations with a stored token, sorted. The
// default token is not included.
func Organizations() ([]string, error) {
	dir, err := TokensDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	var orgs []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == defaultTokenName {
			continue
		}
		orgs = append(orgs, e.Name())
	}
	sort.Strings(orgs)

	return orgs, nil
}

// HasDefault reports whether a default token is stored
func HasDefault() bool {
	_, err := readToken("")
	return err == nil
}

func describe(org string) string {
	if strings.TrimSpace(org) == "" {
		return "the default token"
	}
	return "organization " + strings.ToLower(strings.TrimSpace(org))
}
