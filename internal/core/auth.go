package core

import (
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
)

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceFlag      TokenSource = "flag"
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// DefaultHost is the GitHub host used for gh CLI token lookup.
const DefaultHost = "github.com"

// tokenForHost is replaced in tests.
var tokenForHost = func(host string) string {
	token, _ := auth.TokenForHost(host)
	return token
}

// ResolveGitHubToken finds a GitHub token.
// Priority order:
//  1. flagToken (explicit --token flag)
//  2. GITHUB_TOKEN environment variable
//  3. GH_TOKEN environment variable
//  4. gh CLI auth for host
//
// Public repositories can be listed anonymously, so finding no token is not
// an error; the source is then TokenSourceNone.
func ResolveGitHubToken(flagToken, host string) (string, TokenSource) {
	if flagToken != "" {
		return flagToken, TokenSourceFlag
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnvGitHub
	}

	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token, TokenSourceEnvGH
	}

	if host == "" {
		host = DefaultHost
	}

	if token := tokenForHost(host); token != "" {
		return token, TokenSourceGHCLI
	}

	return "", TokenSourceNone
}
