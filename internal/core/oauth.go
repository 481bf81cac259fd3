package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cli/oauth"
)

// TokenSourceDevice marks a token obtained through DeviceLogin.
const TokenSourceDevice TokenSource = "device-login"

// ErrNoClientID is returned when a device login is attempted without an
// OAuth app client ID
var ErrNoClientID = errors.New("device login needs an OAuth app client ID")

// DeviceLogin signs in through the GitHub OAuth device flow: the user opens
// a verification URL and enters a one-time code.
type DeviceLogin struct {
	// Host is github.com or a GitHub Enterprise host
	Host string

	// ClientID identifies the OAuth app
	ClientID string

	// Scopes requested; none are needed to read public repositories
	Scopes []string

	// APIURL is passed to NewGitHubClient to look up the signed-in login
	APIURL string

	// DisplayCode shows the one-time code and where to enter it
	DisplayCode func(code, verificationURL string)
}

// DeviceLoginResult carries the token and the account it belongs to.
type DeviceLoginResult struct {
	Token string
	Login string
}

// runDeviceFlow is replaced in tests.
var runDeviceFlow = func(flow *oauth.Flow) (string, error) {
	token, err := flow.DeviceFlow()
	if err != nil {
		return "", err
	}

	return token.Token, nil
}

// Run performs the device flow and resolves the signed-in login.
func (d *DeviceLogin) Run(ctx context.Context) (*DeviceLoginResult, error) {
	if d.ClientID == "" {
		return nil, ErrNoClientID
	}

	host, err := oauth.NewGitHubHost(hostURL(d.Host))
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub host: %w", err)
	}

	flow := &oauth.Flow{
		Host:     host,
		ClientID: d.ClientID,
		Scopes:   d.Scopes,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// The verification URL is printed by DisplayCode instead.
		BrowseURL: func(string) error { return nil },
	}

	if d.DisplayCode != nil {
		flow.DisplayCode = func(code, verificationURL string) error {
			d.DisplayCode(code, verificationURL)

			return nil
		}
	}

	token, err := runDeviceFlow(flow)
	if err != nil {
		return nil, fmt.Errorf("device login failed: %w", err)
	}

	client, err := NewGitHubClient(ctx, token, d.APIURL)
	if err != nil {
		return nil, err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, &FetchError{Operation: "get user", Login: displayLogin(""), Err: err}
	}

	return &DeviceLoginResult{Token: token, Login: user.GetLogin()}, nil
}

func hostURL(host string) string {
	if host == "" {
		host = DefaultHost
	}

	if strings.Contains(host, "://") {
		return host
	}

	return "https://" + host
}
