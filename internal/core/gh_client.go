package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/showcase/internal/model"
	"golang.org/x/oauth2"
)

// MaxRepositories caps how many repositories one run fetches.
const MaxRepositories = 100

// RepositorySource supplies the profile and repositories of an account.
type RepositorySource interface {
	Profile(ctx context.Context, login string) (model.Profile, error)
	Repositories(ctx context.Context, login string) ([]model.Repository, error)
}

// NewGitHubClient creates a GitHub client. An empty token gives an
// unauthenticated client; a non-empty apiURL targets GitHub Enterprise.
func NewGitHubClient(ctx context.Context, token, apiURL string) (*github.Client, error) {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(hc)
	if apiURL == "" {
		return client, nil
	}

	client, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}

	return client, nil
}

// GitHubSource is a RepositorySource backed by the GitHub REST API.
type GitHubSource struct {
	client *github.Client
}

// NewGitHubSource wraps client.
func NewGitHubSource(client *github.Client) *GitHubSource {
	return &GitHubSource{client: client}
}

// Profile fetches the account profile. An empty login resolves to the
// authenticated user.
func (s *GitHubSource) Profile(ctx context.Context, login string) (model.Profile, error) {
	user, _, err := s.client.Users.Get(ctx, login)
	if err != nil {
		return model.Profile{}, &FetchError{Operation: "get user", Login: displayLogin(login), Err: err}
	}

	return model.Profile{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Bio:   user.GetBio(),
	}, nil
}

// Repositories fetches up to MaxRepositories public repositories, most
// recently updated first. Only the first page is read.
func (s *GitHubSource) Repositories(ctx context.Context, login string) ([]model.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: MaxRepositories},
	}

	ghRepos, _, err := s.client.Repositories.ListByUser(ctx, login, opts)
	if err != nil {
		return nil, &FetchError{Operation: "list repositories", Login: displayLogin(login), Err: err}
	}

	repos := make([]model.Repository, 0, len(ghRepos))
	for _, r := range ghRepos {
		if r == nil || r.GetPrivate() {
			continue
		}

		repos = append(repos, repositoryFromGitHub(r))
		if len(repos) == MaxRepositories {
			break
		}
	}

	return repos, nil
}

func repositoryFromGitHub(r *github.Repository) model.Repository {
	repo := model.Repository{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Topics:      r.Topics,
		Fork:        r.GetFork(),
		Private:     r.GetPrivate(),
	}

	if ts := r.GetUpdatedAt(); !ts.IsZero() {
		repo.UpdatedAt = ts.UTC().Format(time.RFC3339)
	}

	return repo.WithDefaults()
}

func displayLogin(login string) string {
	if login == "" {
		return "authenticated user"
	}

	return login
}
