package core

import (
	"testing"
)

func stubGHCLI(t *testing.T, token string) {
	t.Helper()

	orig := tokenForHost
	tokenForHost = func(string) string { return token }

	t.Cleanup(func() { tokenForHost = orig })
}

func TestTokenSource_String(t *testing.T) {
	tests := []struct {
		source TokenSource
		want   string
	}{
		{TokenSourceFlag, "flag"},
		{TokenSourceEnvGitHub, "GITHUB_TOKEN"},
		{TokenSourceEnvGH, "GH_TOKEN"},
		{TokenSourceGHCLI, "gh-cli"},
		{TokenSourceNone, "none"},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			if string(tt.source) != tt.want {
				t.Errorf("TokenSource = %q, want %q", tt.source, tt.want)
			}
		})
	}
}

func TestResolveGitHubToken_FlagPriority(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	stubGHCLI(t, "cli-token")

	flagToken := "test-flag-token"

	token, source := ResolveGitHubToken(flagToken, "")
	if token != flagToken {
		t.Errorf("token = %q, want %q", token, flagToken)
	}

	if source != TokenSourceFlag {
		t.Errorf("source = %v, want %v", source, TokenSourceFlag)
	}
}

func TestResolveGitHubToken_EnvGitHub(t *testing.T) {
	testToken := "test-github-token"
	t.Setenv("GITHUB_TOKEN", testToken)
	t.Setenv("GH_TOKEN", "other")
	stubGHCLI(t, "")

	token, source := ResolveGitHubToken("", "")
	if token != testToken {
		t.Errorf("token = %q, want %q", token, testToken)
	}

	if source != TokenSourceEnvGitHub {
		t.Errorf("source = %v, want %v", source, TokenSourceEnvGitHub)
	}
}

func TestResolveGitHubToken_EnvGH(t *testing.T) {
	testToken := "test-gh-token"

	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", testToken)
	stubGHCLI(t, "")

	token, source := ResolveGitHubToken("", "")
	if token != testToken {
		t.Errorf("token = %q, want %q", token, testToken)
	}

	if source != TokenSourceEnvGH {
		t.Errorf("source = %v, want %v", source, TokenSourceEnvGH)
	}
}

func TestResolveGitHubToken_GHCLI(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	var gotHost string

	orig := tokenForHost
	tokenForHost = func(host string) string {
		gotHost = host
		return "cli-token"
	}

	t.Cleanup(func() { tokenForHost = orig })

	token, source := ResolveGitHubToken("", "")
	if token != "cli-token" || source != TokenSourceGHCLI {
		t.Errorf("got (%q, %v), want (%q, %v)", token, source, "cli-token", TokenSourceGHCLI)
	}

	if gotHost != DefaultHost {
		t.Errorf("host = %q, want %q", gotHost, DefaultHost)
	}
}

func TestResolveGitHubToken_None(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
	stubGHCLI(t, "")

	token, source := ResolveGitHubToken("", "ghe.example.com")
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}

	if source != TokenSourceNone {
		t.Errorf("source = %v, want %v", source, TokenSourceNone)
	}
}
