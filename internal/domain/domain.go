// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Identity is the authenticated account context under which all API calls
// are issued. It is immutable for the lifetime of a session.
type Identity struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is a single repository visible to the identity, sourced
// verbatim from the hosting platform.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Private     bool      `json:"private"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	AdminAccess bool      `json:"admin_access"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"url"`
}

// Commit is a single commit fetched on demand from a repository,
// most-recent-first.
type Commit struct {
	Repo    string    `json:"repo"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	URL     string    `json:"url"`
}

// StarredRepo is a repository the identity has bookmarked. Language is
// "Unknown" when the platform reports none.
type StarredRepo struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Statistics is a point-in-time aggregation over the repository snapshot.
// It is computed fresh on every request and never cached.
//
// The counts always satisfy:
//
//	Owned + FromOrganizations == Total
//	Public + Private == Total
//	Forked + NonFork == Total
//	Archived + NonArchived == Total
type Statistics struct {
	Total             int `json:"total"`
	Owned             int `json:"owned"`
	Forked            int `json:"forked"`
	NonFork           int `json:"non_fork"`
	Archived          int `json:"archived"`
	NonArchived       int `json:"non_archived"`
	Public            int `json:"public"`
	Private           int `json:"private"`
	FromOrganizations int `json:"from_organizations"`
}

// Metric is one named statistic, used for ordered display.
type Metric struct {
	Label string
	Value int
}

// Metrics returns the nine counts in display order, labelled the way the
// stats command prints them. The owner login is interpolated into the
// "Owned by" label.
func (s Statistics) Metrics(login string) []Metric {
	return []Metric{
		{"Total Repositories", s.Total},
		{"Owned by " + login, s.Owned},
		{"Forked", s.Forked},
		{"Non-fork", s.NonFork},
		{"Archived", s.Archived},
		{"Non-archived", s.NonArchived},
		{"Public", s.Public},
		{"Private", s.Private},
		{"From Organizations", s.FromOrganizations},
	}
}

// RepoRecord is the fixed-column tabular projection of a Repository.
type RepoRecord struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	IsFork      bool      `json:"is_fork"`
	IsArchived  bool      `json:"is_archived"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"url"`
	Owner       string    `json:"owner"`
	IsOwner     bool      `json:"is_owner"`
}
