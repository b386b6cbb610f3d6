package projects

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Source lists the public projects of a user
type Source interface {
	ListProjects(ctx context.Context, user string, perPage int) ([]Project, error)
}

// GitHubOptions configures the GitHub-backed source
type GitHubOptions struct {
	Token        string
	Timeout      time.Duration
	RateInterval time.Duration
	BaseURL      string // API root override, mostly for tests and GitHub Enterprise
}

// GitHubSource reads repositories from the GitHub REST API
type GitHubSource struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewGitHubSource creates a source. Without a token requests are anonymous.
func NewGitHubSource(opts GitHubOptions) (*GitHubSource, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	client := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github base url %q: %w", opts.BaseURL, err)
		}
		client.BaseURL = base
	}

	limit := rate.Inf
	if opts.RateInterval > 0 {
		limit = rate.Every(opts.RateInterval)
	}

	return &GitHubSource{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}, nil
}

// ListProjects calls GET /users/{user}/repos?sort=updated&per_page=N
func (s *GitHubSource) ListProjects(ctx context.Context, user string, perPage int) ([]Project, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	repos, _, err := s.client.Repositories.ListByUser(ctx, user, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", user, err)
	}

	out := make([]Project, 0, len(repos))
	for _, repo := range repos {
		out = append(out, convertRepository(repo))
	}
	return out, nil
}

func convertRepository(repo *github.Repository) Project {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return Project{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Topics:      topics,
		CreatedAt:   repo.GetCreatedAt().Time,
		UpdatedAt:   repo.GetUpdatedAt().Time,
		Size:        repo.GetSize(),
		License:     repo.GetLicense().GetSPDXID(),
		Owner: Owner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
		},
	}
}
