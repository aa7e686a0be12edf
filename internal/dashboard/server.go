// Package dashboard serves the interactive analytics dashboard over HTTP.
// It is the web counterpart of the CLI commands, backed by the same
// repository manager.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/streamgit/streamgit/internal/domain"
	"github.com/streamgit/streamgit/internal/export"
	"github.com/streamgit/streamgit/internal/gateway"
	"github.com/streamgit/streamgit/internal/usecase"
	"github.com/streamgit/streamgit/internal/visualize"
)

const defaultRecentLimit = 10

// Server is the dashboard HTTP server.
type Server struct {
	svc    gateway.Service
	logger *log.Logger
	echo   *echo.Echo
}

type renderer struct{}

func (renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return pages.ExecuteTemplate(w, name, data)
}

// NewServer wires the routes onto a fresh echo instance.
func NewServer(svc gateway.Service, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer{}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{svc: svc, logger: logger, echo: e}

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/stats")
	})
	e.GET("/stats", s.handleStats)
	e.GET("/activity", s.handleActivity)
	e.GET("/data", s.handleData)
	e.GET("/data.csv", s.handleDataCSV)
	e.GET("/commits.csv", s.handleCommitsCSV)
	e.GET("/visualize", s.handleVisualize)
	e.GET("/charts/:kind", s.handleChart)
	e.GET("/stars", s.handleStars)
	e.GET("/stars.csv", s.handleStarsCSV)
	e.GET("/create", s.handleCreateForm)
	e.POST("/repos", s.handleCreate)
	e.GET("/delete", s.handleDeleteForm)
	e.POST("/repos/delete", s.handleDelete)

	return s
}

// Run starts the server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Printf("Dashboard listening on http://%s", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

type page struct {
	Title string
	Login string
}

func (s *Server) page(title string) page {
	return page{Title: title, Login: s.svc.Identity().Login}
}

func (s *Server) handleStats(c echo.Context) error {
	stats := s.svc.Statistics()
	return c.Render(http.StatusOK, "stats", struct {
		page
		Stats   domain.Statistics
		Metrics []domain.Metric
	}{s.page("Repository Statistics"), stats, stats.Metrics(s.svc.Identity().Login)})
}

// recentCommits fetches commits for the most recently updated repositories,
// sequentially. The first failure that is not the empty-repository case
// aborts the whole listing.
func (s *Server) recentCommits(ctx context.Context, limit int) ([]domain.Repository, []domain.Commit, error) {
	repos := s.svc.Recent(limit)
	var commits []domain.Commit
	for _, repo := range repos {
		batch, err := s.svc.Commits(ctx, repo, gateway.DefaultCommitLimit)
		if err != nil {
			return nil, nil, err
		}
		commits = append(commits, batch...)
	}
	return repos, commits, nil
}

func (s *Server) handleActivity(c echo.Context) error {
	limit := defaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}
	repos, commits, err := s.recentCommits(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	identity := s.svc.Identity()
	mine, others := usecase.PartitionCommitsByAuthor(commits, identity.Login, identity.Name)
	shown := commits
	if c.QueryParam("mine") == "true" {
		shown = mine
	}
	return c.Render(http.StatusOK, "activity", struct {
		page
		Name    string
		Repos   []domain.Repository
		Commits []domain.Commit
		Mine    usecase.ActivitySummary
		Others  usecase.ActivitySummary
	}{s.page("Recent Activity"), identity.Name, repos, shown, usecase.Summarize(mine), usecase.Summarize(others)})
}

func (s *Server) records() []domain.RepoRecord {
	return usecase.RepoRecords(s.svc.Repositories(), s.svc.Identity().Login)
}

func (s *Server) handleData(c echo.Context) error {
	records := s.records()
	owned := 0
	for _, r := range records {
		if r.IsOwner {
			owned++
		}
	}
	return c.Render(http.StatusOK, "data", struct {
		page
		Records    []domain.RepoRecord
		OwnedCount int
		OtherCount int
	}{s.page("Repository Data"), records, owned, len(records) - owned})
}

func (s *Server) serveCSV(c echo.Context, t export.Table, category string) error {
	filename := export.DefaultFilename(category, s.svc.Identity().Login, time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteCSV(t, c.Response())
}

func (s *Server) handleDataCSV(c echo.Context) error {
	return s.serveCSV(c, export.RepoTable(s.records()), "repos")
}

func (s *Server) handleCommitsCSV(c echo.Context) error {
	_, commits, err := s.recentCommits(c.Request().Context(), defaultRecentLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return s.serveCSV(c, export.CommitTable(commits), "all_commits")
}

func (s *Server) handleVisualize(c echo.Context) error {
	return c.Render(http.StatusOK, "visualize", struct {
		page
		Kinds []string
	}{s.page("Visualizations"), visualize.Kinds})
}

func (s *Server) handleChart(c echo.Context) error {
	kind := c.Param("kind")
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	switch kind {
	case "starred_languages", "top_starred":
		starred, err := s.svc.Starred(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		summary := usecase.SummarizeStarred(starred, 10)
		if kind == "top_starred" {
			return visualize.TopStarredBar(summary.Top).Render(c.Response())
		}
		return visualize.StarredLanguagePie(summary.Languages).Render(c.Response())
	default:
		if err := visualize.RenderHTML(kind, s.records(), c.Response()); err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return nil
	}
}

func (s *Server) handleStars(c echo.Context) error {
	starred, err := s.svc.Starred(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.Render(http.StatusOK, "stars", struct {
		page
		Starred []domain.StarredRepo
		Summary usecase.StarSummary
	}{s.page("Starred Repositories"), starred, usecase.SummarizeStarred(starred, 10)})
}

func (s *Server) handleStarsCSV(c echo.Context) error {
	starred, err := s.svc.Starred(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return s.serveCSV(c, export.StarTable(starred), "starred_repos")
}

type formPage struct {
	page
	Message string
	Error   string
}

func (s *Server) handleCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "create", formPage{page: s.page("Create New Repository")})
}

func (s *Server) handleCreate(c echo.Context) error {
	opts := gateway.CreateOptions{
		Name:              c.FormValue("name"),
		Description:       c.FormValue("description"),
		Private:           c.FormValue("private") == "true",
		AutoInit:          c.FormValue("auto_init") == "true",
		GitignoreTemplate: c.FormValue("gitignore_template"),
		LicenseTemplate:   c.FormValue("license_template"),
	}
	created, err := s.svc.Create(c.Request().Context(), opts)
	view := formPage{page: s.page("Create New Repository")}
	if err != nil {
		view.Error = fmt.Sprintf("An error occurred while creating the repository: %v", err)
		return c.Render(http.StatusOK, "create", view)
	}
	view.Message = fmt.Sprintf("Repository %q created successfully! URL: %s", created.Name, created.URL)
	return c.Render(http.StatusOK, "create", view)
}

// deletable lists snapshot repositories the identity holds admin rights on.
func (s *Server) deletable() []domain.Repository {
	var out []domain.Repository
	for _, r := range s.svc.Repositories() {
		if r.AdminAccess {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) handleDeleteForm(c echo.Context) error {
	return c.Render(http.StatusOK, "delete", struct {
		formPage
		Deletable []domain.Repository
	}{formPage{page: s.page("Delete Repository")}, s.deletable()})
}

func (s *Server) handleDelete(c echo.Context) error {
	name := c.FormValue("name")
	confirmation := c.FormValue("confirmation")
	view := struct {
		formPage
		Deletable []domain.Repository
	}{formPage{page: s.page("Delete Repository")}, nil}

	if name == "" || confirmation != name {
		view.Error = "Confirmation does not match the repository name. Deletion aborted."
		view.Deletable = s.deletable()
		return c.Render(http.StatusOK, "delete", view)
	}
	if err := s.svc.Delete(c.Request().Context(), name); err != nil {
		view.Error = fmt.Sprintf("An error occurred while deleting the repository: %v", err)
		view.Deletable = s.deletable()
		return c.Render(http.StatusOK, "delete", view)
	}
	view.Message = fmt.Sprintf("Repository %s has been deleted successfully.", name)
	view.Deletable = s.deletable()
	return c.Render(http.StatusOK, "delete", view)
}
