// Package usecase contains the business logic of the application: pure
// aggregation functions over the repository and commit records.
package usecase

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/streamgit/streamgit/internal/domain"
)

// ComputeStatistics accumulates the nine named counts in a single pass.
// It assumes no particular input ordering and tolerates an empty slice.
func ComputeStatistics(repos []domain.Repository, login string) domain.Statistics {
	s := domain.Statistics{Total: len(repos)}
	for _, r := range repos {
		if r.Fork {
			s.Forked++
		}
		if r.Archived {
			s.Archived++
		}
		if r.Private {
			s.Private++
		}
		if r.Owner != login {
			s.FromOrganizations++
		}
	}
	s.NonFork = s.Total - s.Forked
	s.NonArchived = s.Total - s.Archived
	s.Public = s.Total - s.Private
	s.Owned = s.Total - s.FromOrganizations
	return s
}

// ActivitySummary describes one side of an author partition.
type ActivitySummary struct {
	Commits int
	Repos   int
}

// PartitionCommitsByAuthor splits commits into those authored by the
// identity (author name equals the login or the display name, exact match)
// and everything else. Every input commit lands in exactly one partition.
func PartitionCommitsByAuthor(commits []domain.Commit, login, name string) (mine, others []domain.Commit) {
	mine = []domain.Commit{}
	others = []domain.Commit{}
	for _, c := range commits {
		if c.Author == login || c.Author == name {
			mine = append(mine, c)
		} else {
			others = append(others, c)
		}
	}
	return mine, others
}

// Summarize derives the counts for one partition: total commits and the
// number of distinct repositories they touch.
func Summarize(commits []domain.Commit) ActivitySummary {
	repos := make(map[string]struct{})
	for _, c := range commits {
		repos[c.Repo] = struct{}{}
	}
	return ActivitySummary{Commits: len(commits), Repos: len(repos)}
}

// RepoRecords projects repositories into the fixed-column tabular form.
func RepoRecords(repos []domain.Repository, login string) []domain.RepoRecord {
	records := make([]domain.RepoRecord, 0, len(repos))
	for _, r := range repos {
		records = append(records, domain.RepoRecord{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			IsFork:      r.Fork,
			IsArchived:  r.Archived,
			IsPrivate:   r.Private,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
			URL:         r.URL,
			Owner:       r.Owner,
			IsOwner:     r.Owner == login,
		})
	}
	return records
}

// Recent returns the first limit repositories after sorting by last update
// descending. The input is not modified.
func Recent(repos []domain.Repository, limit int) []domain.Repository {
	sorted := make([]domain.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if limit < 0 || limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// LanguageCount is one language bucket, ordered most-used first.
type LanguageCount struct {
	Language string
	Count    int
}

// LanguageCounts buckets records by language. Records with no language are
// grouped under "Unknown". Ties break alphabetically for stable output.
func LanguageCounts(records []domain.RepoRecord) []LanguageCount {
	byLanguage := make(map[string]int)
	for _, r := range records {
		language := r.Language
		if language == "" {
			language = "Unknown"
		}
		byLanguage[language]++
	}
	counts := make([]LanguageCount, 0, len(byLanguage))
	for language, n := range byLanguage {
		counts = append(counts, LanguageCount{Language: language, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Language < counts[j].Language
	})
	return counts
}

// MonthCount is the number of repositories created in one calendar month.
type MonthCount struct {
	Month time.Time
	Count int
}

// CreationByMonth buckets records into calendar months of their creation
// timestamps, in chronological order. Gaps are not filled.
func CreationByMonth(records []domain.RepoRecord) []MonthCount {
	byMonth := make(map[time.Time]int)
	for _, r := range records {
		month := time.Date(r.CreatedAt.Year(), r.CreatedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[month]++
	}
	counts := make([]MonthCount, 0, len(byMonth))
	for month, n := range byMonth {
		counts = append(counts, MonthCount{Month: month, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Month.Before(counts[j].Month)
	})
	return counts
}

// StarSummary aggregates the identity's starred repositories.
type StarSummary struct {
	Total       int
	MeanStars   float64
	MedianStars float64
	Top         []domain.StarredRepo
	Languages   []LanguageCount
}

// SummarizeStarred computes the star summary: total count, mean and median
// star counts, the topN most-starred entries, and a language breakdown.
func SummarizeStarred(starred []domain.StarredRepo, topN int) StarSummary {
	summary := StarSummary{Total: len(starred)}
	if len(starred) == 0 {
		return summary
	}

	values := make([]float64, len(starred))
	byLanguage := make(map[string]int)
	for i, s := range starred {
		values[i] = float64(s.Stars)
		byLanguage[s.Language]++
	}
	// stats only errors on empty input, which is handled above.
	summary.MeanStars, _ = stats.Mean(values)
	summary.MedianStars, _ = stats.Median(values)

	sorted := make([]domain.StarredRepo, len(starred))
	copy(sorted, starred)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if topN < 0 || topN > len(sorted) {
		topN = len(sorted)
	}
	summary.Top = sorted[:topN]

	for language, n := range byLanguage {
		summary.Languages = append(summary.Languages, LanguageCount{Language: language, Count: n})
	}
	sort.Slice(summary.Languages, func(i, j int) bool {
		if summary.Languages[i].Count != summary.Languages[j].Count {
			return summary.Languages[i].Count > summary.Languages[j].Count
		}
		return summary.Languages[i].Language < summary.Languages[j].Language
	})
	return summary
}
