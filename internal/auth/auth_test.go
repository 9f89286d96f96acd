package auth

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTokenLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if IsAuthenticated("contoso") {
		t.Fatal("IsAuthenticated() = true before login")
	}

	if err := SaveToken("Contoso", "  contoso-token\n"); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}

	// Organization names are case-insensitive
	token, err := GetToken("contoso")
	if err != nil {
		t.Fatalf("GetToken() failed: %v", err)
	}
	if token != "contoso-token" {
		t.Errorf("GetToken() = %q, want %q", token, "contoso-token")
	}

	path, err := GetTokenPath("CONTOSO")
	if err != nil {
		t.Fatalf("GetTokenPath() failed: %v", err)
	}
	if filepath.Base(path) != "contoso" {
		t.Errorf("token file = %q, want %q", filepath.Base(path), "contoso")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file permissions = %o, want 600", perm)
	}

	if err := Logout("contoso"); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if IsAuthenticated("contoso") {
		t.Error("IsAuthenticated() = true after logout")
	}
	if err := Logout("contoso"); err == nil {
		t.Error("Logout() twice should fail")
	}
}

func TestGetToken_PerOrganization(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SaveToken("", "default-token"); err != nil {
		t.Fatalf("SaveToken(default) failed: %v", err)
	}
	if err := SaveToken("fabrikam", "fabrikam-token"); err != nil {
		t.Fatalf("SaveToken(fabrikam) failed: %v", err)
	}

	tests := []struct {
		org  string
		want string
	}{
		{"fabrikam", "fabrikam-token"},
		{"Fabrikam", "fabrikam-token"},
		{"contoso", "default-token"},
		{"", "default-token"},
	}

	for _, tt := range tests {
		got, err := GetToken(tt.org)
		if err != nil {
			t.Errorf("GetToken(%q) failed: %v", tt.org, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetToken(%q) = %q, want %q", tt.org, got, tt.want)
		}
	}

	orgs, err := Organizations()
	if err != nil {
		t.Fatalf("Organizations() failed: %v", err)
	}
	if !reflect.DeepEqual(orgs, []string{"fabrikam"}) {
		t.Errorf("Organizations() = %v, want [fabrikam]", orgs)
	}
	if !HasDefault() {
		t.Error("HasDefault() = false")
	}
}

func TestGetToken_NotAuthenticated(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := GetToken("contoso"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("GetToken() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestGetToken_Empty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SaveToken("contoso", "   "); err != nil {
		t.Fatalf("SaveToken() failed: %v", err)
	}

	if _, err := GetToken("contoso"); err == nil {
		t.Error("GetToken() expected error for empty token file")
	}
}

func TestGetTokenPath_InvalidOrganization(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, org := range []string{"..", ".", "a/b", `a\b`, "_default"} {
		if _, err := GetTokenPath(org); err == nil {
			t.Errorf("GetTokenPath(%q) expected error", org)
		}
	}
}
