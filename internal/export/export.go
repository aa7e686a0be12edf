// Package export builds tabular projections of the domain records and
// serializes them to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/streamgit/streamgit/internal/domain"
)

// Supported data formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const timeLayout = time.RFC3339

// Table is a fixed-schema tabular projection ready for serialization.
type Table struct {
	Columns []string
	Rows    [][]string
}

// DefaultFilename builds the conventional export filename:
// YYYYMMDD_category_username.csv.
func DefaultFilename(category, username string, today time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", today.Format("20060102"), category, username)
}

// RepoTable projects repository records into the full 14-column table.
func RepoTable(records []domain.RepoRecord) Table {
	t := Table{Columns: []string{
		"name", "full_name", "description", "language", "stars", "forks",
		"is_fork", "is_archived", "is_private", "created_at", "updated_at",
		"url", "owner", "is_owner",
	}}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.FullName,
			r.Description,
			r.Language,
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			strconv.FormatBool(r.IsFork),
			strconv.FormatBool(r.IsArchived),
			strconv.FormatBool(r.IsPrivate),
			r.CreatedAt.Format(timeLayout),
			r.UpdatedAt.Format(timeLayout),
			r.URL,
			r.Owner,
			strconv.FormatBool(r.IsOwner),
		})
	}
	return t
}

// StarTable projects starred repositories into their export table.
func StarTable(starred []domain.StarredRepo) Table {
	t := Table{Columns: []string{
		"name", "owner", "language", "stars", "forks", "url", "description",
	}}
	for _, s := range starred {
		t.Rows = append(t.Rows, []string{
			s.Name,
			s.Owner,
			s.Language,
			strconv.Itoa(s.Stars),
			strconv.Itoa(s.Forks),
			s.URL,
			s.Description,
		})
	}
	return t
}

// CommitTable projects commits into their export table.
func CommitTable(commits []domain.Commit) Table {
	t := Table{Columns: []string{"repo", "message", "date", "author", "url"}}
	for _, c := range commits {
		t.Rows = append(t.Rows, []string{
			c.Repo,
			c.Message,
			c.Date.Format(timeLayout),
			c.Author,
			c.URL,
		})
	}
	return t
}

// Write serializes the table to path and returns the path actually written.
// CSV output carries a header row and no index column. An xlsx request is
// downgraded: a warning is logged, the extension is rewritten to .csv, and
// CSV is written. Spreadsheet bytes are never produced.
func Write(t Table, format, path string, logger *log.Logger) (string, error) {
	switch format {
	case FormatCSV:
	case FormatXLSX:
		logger.Println("Warning: Excel export is not recommended. Using CSV instead.")
		path = strings.ReplaceAll(path, ".xlsx", ".csv")
	default:
		return "", fmt.Errorf("unsupported data format: %s", format)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(t, f); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCSV serializes the table as CSV: header row first, no index column.
func WriteCSV(t Table, dst io.Writer) error {
	w := csv.NewWriter(dst)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
