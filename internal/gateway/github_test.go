package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgit/streamgit/internal/domain"
)

// setupTestManager creates a Manager that communicates with a mock HTTP server.
func setupTestManager(t *testing.T, handler http.Handler) (*Manager, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	m := &Manager{
		client:   client,
		logger:   log.New(io.Discard, "", 0),
		validate: validator.New(),
		identity: domain.Identity{Login: "testuser", Name: "Test User"},
	}
	return m, server
}

func TestManager_Authenticate(t *testing.T) {
	testCases := []struct {
		name        string
		handlerFunc func(w http.ResponseWriter, r *http.Request)
		expectErr   error
		expectLogin string
	}{
		{
			name: "happy path - identity captured",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/user", r.URL.Path)
				fmt.Fprint(w, `{"login": "testuser", "name": "Test User", "avatar_url": "https://example.com/a.png"}`)
			},
			expectLogin: "testuser",
		},
		{
			name: "invalid token - authentication error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message": "Bad credentials"}`)
			},
			expectErr: ErrAuthentication,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := setupTestManager(t, http.HandlerFunc(tc.handlerFunc))
			err := m.authenticate(context.Background())
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectLogin, m.Identity().Login)
			assert.Equal(t, "Test User", m.Identity().Name)
		})
	}
}

func TestManager_Refresh(t *testing.T) {
	m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("type"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		fmt.Fprint(w, `[
			{"name": "proj", "full_name": "testuser/proj", "owner": {"login": "testuser"},
			 "language": "Go", "stargazers_count": 3, "forks_count": 1, "private": true,
			 "permissions": {"admin": true},
			 "created_at": "2023-05-01T12:00:00Z", "updated_at": "2024-02-03T08:30:00Z",
			 "html_url": "https://github.com/testuser/proj"},
			{"name": "lib", "full_name": "some-org/lib", "owner": {"login": "some-org"},
			 "fork": true, "archived": true}
		]`)
	}))

	require.NoError(t, m.Refresh(context.Background()))

	repos := m.Repositories()
	require.Len(t, repos, 2)
	assert.Equal(t, "proj", repos[0].Name)
	assert.Equal(t, "testuser", repos[0].Owner)
	assert.Equal(t, "Go", repos[0].Language)
	assert.True(t, repos[0].Private)
	assert.True(t, repos[0].AdminAccess)
	assert.Equal(t, "https://github.com/testuser/proj", repos[0].URL)
	assert.True(t, repos[1].Fork)
	assert.True(t, repos[1].Archived)

	stats := m.Statistics()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Owned)
	assert.Equal(t, 1, stats.FromOrganizations)
}

func TestManager_Commits(t *testing.T) {
	testCases := []struct {
		name        string
		handlerFunc func(w http.ResponseWriter, r *http.Request)
		limit       int
		expectLen   int
		expectError bool
	}{
		{
			name: "happy path - commits converted most recent first",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/testuser/proj/commits", r.URL.Path)
				fmt.Fprint(w, `[
					{"commit": {"message": "second", "author": {"name": "Test User", "date": "2024-02-02T10:00:00Z"}}, "html_url": "https://example.com/c2"},
					{"commit": {"message": "first", "author": {"name": "someone", "date": "2024-02-01T10:00:00Z"}}, "html_url": "https://example.com/c1"}
				]`)
			},
			limit:     5,
			expectLen: 2,
		},
		{
			name: "empty repository - 409 yields empty slice, not an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				fmt.Fprint(w, `{"message": "Git Repository is empty."}`)
			},
			limit:     5,
			expectLen: 0,
		},
		{
			name: "server error propagates",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			limit:       5,
			expectError: true,
		},
		{
			name: "limit truncates the returned page",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `[
					{"commit": {"message": "a"}},
					{"commit": {"message": "b"}},
					{"commit": {"message": "c"}}
				]`)
			},
			limit:     2,
			expectLen: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := setupTestManager(t, http.HandlerFunc(tc.handlerFunc))
			repo := domain.Repository{Name: "proj", Owner: "testuser"}
			commits, err := m.Commits(context.Background(), repo, tc.limit)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, commits, tc.expectLen)
			for _, c := range commits {
				assert.Equal(t, "proj", c.Repo)
			}
		})
	}
}

func TestManager_Starred(t *testing.T) {
	m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/starred", r.URL.Path)
		fmt.Fprint(w, `[
			{"repo": {"name": "famous", "owner": {"login": "someone"}, "language": "Go",
			          "stargazers_count": 1000, "forks_count": 50,
			          "html_url": "https://github.com/someone/famous", "description": "well known"}},
			{"repo": {"name": "mystery", "owner": {"login": "other"}}}
		]`)
	}))

	starred, err := m.Starred(context.Background())

	require.NoError(t, err)
	require.Len(t, starred, 2)
	assert.Equal(t, "famous", starred[0].Name)
	assert.Equal(t, "Go", starred[0].Language)
	assert.Equal(t, 1000, starred[0].Stars)
	// Missing language defaults to the literal "Unknown".
	assert.Equal(t, "Unknown", starred[1].Language)
}

func TestManager_Create(t *testing.T) {
	var body map[string]interface{}
	m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/repos":
			if r.Method == http.MethodPost {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(w, `{"name": "new-repo", "full_name": "testuser/new-repo",
					"owner": {"login": "testuser"}, "html_url": "https://github.com/testuser/new-repo"}`)
				return
			}
			// Snapshot refresh after creation.
			fmt.Fprint(w, `[{"name": "new-repo", "owner": {"login": "testuser"}}]`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	created, err := m.Create(context.Background(), CreateOptions{Name: "new-repo", Private: true})

	require.NoError(t, err)
	assert.Equal(t, "new-repo", created.Name)
	assert.Equal(t, "https://github.com/testuser/new-repo", created.URL)

	// Optional fields left unset must be omitted from the request body.
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "private")
	assert.NotContains(t, body, "description")
	assert.NotContains(t, body, "gitignore_template")
	assert.NotContains(t, body, "license_template")

	// The snapshot was refreshed and now includes the new repository.
	require.Len(t, m.Repositories(), 1)
	assert.Equal(t, "new-repo", m.Repositories()[0].Name)
}

func TestManager_Create_Invalid(t *testing.T) {
	m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid options")
	}))

	_, err := m.Create(context.Background(), CreateOptions{})
	assert.ErrorContains(t, err, "invalid repository options")
}

func TestManager_Delete(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		expectErr  error
	}{
		{name: "happy path - snapshot refreshed", statusCode: http.StatusNoContent},
		{name: "missing repository", statusCode: http.StatusNotFound, expectErr: ErrNotFound},
		{name: "no admin rights", statusCode: http.StatusForbidden, expectErr: ErrPermission},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case r.Method == http.MethodDelete:
					assert.Equal(t, "/repos/testuser/doomed", r.URL.Path)
					w.WriteHeader(tc.statusCode)
					if tc.statusCode != http.StatusNoContent {
						fmt.Fprint(w, `{"message": "nope"}`)
					}
				default:
					fmt.Fprint(w, `[]`)
				}
			}))
			m.repos = []domain.Repository{{Name: "doomed", Owner: "testuser"}}

			err := m.Delete(context.Background(), "doomed")
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				// The failed operation must not mutate the snapshot.
				assert.Len(t, m.Repositories(), 1)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, m.Repositories())
		})
	}
}

func TestManager_Recent(t *testing.T) {
	m, _ := setupTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	m.repos = []domain.Repository{
		{Name: "b", UpdatedAt: mustTime("2024-01-02T00:00:00Z")},
		{Name: "a", UpdatedAt: mustTime("2024-03-01T00:00:00Z")},
	}

	recent := m.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "a", recent[0].Name)
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
