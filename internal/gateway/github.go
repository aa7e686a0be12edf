// Package gateway provides a gateway to the GitHub API, abstracting away
// the underlying REST client. It holds the authenticated identity and an
// in-memory snapshot of every repository visible to it.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/streamgit/streamgit/internal/domain"
	"github.com/streamgit/streamgit/internal/usecase"
)

// DefaultCommitLimit is the number of commits fetched per repository when
// the caller does not ask for a specific count.
const DefaultCommitLimit = 5

// CreateOptions are the inputs to repository creation. Optional string
// fields are omitted from the API request when left empty.
type CreateOptions struct {
	Name              string `validate:"required,max=100"`
	Description       string
	Private           bool
	AutoInit          bool
	GitignoreTemplate string
	LicenseTemplate   string
}

// Service defines the behavior of the repository manager, allowing the CLI
// and dashboard to be tested against a mock.
type Service interface {
	Identity() domain.Identity
	Repositories() []domain.Repository
	Statistics() domain.Statistics
	Recent(limit int) []domain.Repository
	Commits(ctx context.Context, repo domain.Repository, limit int) ([]domain.Commit, error)
	Starred(ctx context.Context) ([]domain.StarredRepo, error)
	Create(ctx context.Context, opts CreateOptions) (domain.Repository, error)
	Delete(ctx context.Context, name string) error
	Refresh(ctx context.Context) error
}

// Manager is the concrete implementation of the Service interface. It is
// not safe for concurrent use: all operations are synchronous calls against
// the platform API plus reads of the snapshot taken at construction.
type Manager struct {
	client   *github.Client
	logger   *log.Logger
	validate *validator.Validate

	identity domain.Identity
	repos    []domain.Repository
}

// NewManager authenticates the token and takes the initial repository
// snapshot, sorted by last update descending. An invalid or under-scoped
// token fails with ErrAuthentication.
func NewManager(ctx context.Context, token string, logger *log.Logger) (*Manager, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	m := &Manager{
		client:   github.NewClient(httpClient),
		logger:   logger,
		validate: validator.New(),
	}
	if err := m.authenticate(ctx); err != nil {
		return nil, err
	}
	if err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) authenticate(ctx context.Context) error {
	user, _, err := m.client.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch authenticated user: %w", classify(err))
	}
	m.identity = domain.Identity{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}
	m.logger.Printf("Authenticated as: %s", m.identity.Login)
	return nil
}

// Identity returns the authenticated identity fetched at construction.
func (m *Manager) Identity() domain.Identity {
	return m.identity
}

// Repositories returns the current snapshot: every repository the identity
// can see (owned, collaborator, organization), last-updated first.
func (m *Manager) Repositories() []domain.Repository {
	return m.repos
}

// Refresh replaces the snapshot with a fresh full listing.
func (m *Manager) Refresh(ctx context.Context) error {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Type:        "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var repos []domain.Repository
	for {
		page, resp, err := m.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list repositories: %w", classify(err))
		}
		for _, r := range page {
			repos = append(repos, convertRepository(r))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		m.logger.Println("  Fetching next page of repositories...")
	}
	m.repos = repos
	m.logger.Printf("Snapshot holds %d repositories", len(repos))
	return nil
}

// Statistics computes the counts over the current snapshot. Nothing is
// cached; every call re-scans the list.
func (m *Manager) Statistics() domain.Statistics {
	return usecase.ComputeStatistics(m.repos, m.identity.Login)
}

// Recent returns the first limit repositories after re-sorting the snapshot
// by last update descending. Idempotent regardless of prior sort state.
func (m *Manager) Recent(limit int) []domain.Repository {
	return usecase.Recent(m.repos, limit)
}

// Commits fetches up to limit commits for one repository, most recent
// first. A repository with no commits yields an empty slice, not an error.
func (m *Manager) Commits(ctx context.Context, repo domain.Repository, limit int) ([]domain.Commit, error) {
	if limit <= 0 {
		limit = DefaultCommitLimit
	}
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	}
	page, _, err := m.client.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		if isEmptyRepository(err) {
			return []domain.Commit{}, nil
		}
		return nil, fmt.Errorf("failed to list commits for %s: %w", repo.Name, classify(err))
	}
	commits := make([]domain.Commit, 0, limit)
	for _, c := range page {
		if len(commits) == limit {
			break
		}
		commits = append(commits, convertCommit(repo.Name, c))
	}
	return commits, nil
}

// Starred lists the identity's starred repositories. Language defaults to
// "Unknown" when the platform reports none.
func (m *Manager) Starred(ctx context.Context) ([]domain.StarredRepo, error) {
	opts := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var starred []domain.StarredRepo
	for {
		page, resp, err := m.client.Activity.ListStarred(ctx, "", opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list starred repositories: %w", classify(err))
		}
		for _, s := range page {
			starred = append(starred, convertStarred(s.GetRepository()))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		m.logger.Println("  Fetching next page of starred repositories...")
	}
	return starred, nil
}

// Create creates a repository for the authenticated user and refreshes the
// snapshot so subsequent reads include it.
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (domain.Repository, error) {
	if err := m.validate.Struct(opts); err != nil {
		return domain.Repository{}, fmt.Errorf("invalid repository options: %w", err)
	}
	req := &github.Repository{
		Name:     github.String(opts.Name),
		Private:  github.Bool(opts.Private),
		AutoInit: github.Bool(opts.AutoInit),
	}
	if opts.Description != "" {
		req.Description = github.String(opts.Description)
	}
	if opts.GitignoreTemplate != "" {
		req.GitignoreTemplate = github.String(opts.GitignoreTemplate)
	}
	if opts.LicenseTemplate != "" {
		req.LicenseTemplate = github.String(opts.LicenseTemplate)
	}
	created, _, err := m.client.Repositories.Create(ctx, "", req)
	if err != nil {
		return domain.Repository{}, fmt.Errorf("failed to create repository %s: %w", opts.Name, classify(err))
	}
	m.logger.Printf("Created repository %s", created.GetFullName())
	if err := m.Refresh(ctx); err != nil {
		return domain.Repository{}, err
	}
	return convertRepository(created), nil
}

// Delete removes one of the identity's repositories by name and refreshes
// the snapshot so subsequent reads reflect the deletion.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if _, err := m.client.Repositories.Delete(ctx, m.identity.Login, name); err != nil {
		return fmt.Errorf("failed to delete repository %s: %w", name, classify(err))
	}
	m.logger.Printf("Deleted repository %s", name)
	return m.Refresh(ctx)
}

func convertRepository(r *github.Repository) domain.Repository {
	return domain.Repository{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Owner:       r.GetOwner().GetLogin(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Private:     r.GetPrivate(),
		Fork:        r.GetFork(),
		Archived:    r.GetArchived(),
		AdminAccess: r.GetPermissions()["admin"],
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		URL:         r.GetHTMLURL(),
	}
}

func convertCommit(repoName string, c *github.RepositoryCommit) domain.Commit {
	return domain.Commit{
		Repo:    repoName,
		Message: c.GetCommit().GetMessage(),
		Author:  c.GetCommit().GetAuthor().GetName(),
		Date:    c.GetCommit().GetAuthor().GetDate().Time,
		URL:     c.GetHTMLURL(),
	}
}

func convertStarred(r *github.Repository) domain.StarredRepo {
	language := r.GetLanguage()
	if language == "" {
		language = "Unknown"
	}
	return domain.StarredRepo{
		Name:        r.GetName(),
		Owner:       r.GetOwner().GetLogin(),
		Language:    language,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		URL:         r.GetHTMLURL(),
		Description: r.GetDescription(),
	}
}
