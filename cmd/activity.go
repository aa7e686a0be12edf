package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/domain"
	"github.com/streamgit/streamgit/internal/export"
	"github.com/streamgit/streamgit/internal/gateway"
	"github.com/streamgit/streamgit/internal/usecase"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent commits across your most active repositories",
	Long: `Fetches the most recently updated repositories and their latest
commits, then partitions the commits into yours and everyone else's by
author name. Commits are matched against both your login and your
display name. The combined commit list can optionally be exported.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		mineOnly, _ := cmd.Flags().GetBool("mine")
		output, _ := cmd.Flags().GetString("output")

		manager := newManager(ctx, cmd, logger)
		identity := manager.Identity()

		repos := manager.Recent(limit)
		var commits []domain.Commit
		for i, repo := range repos {
			fmt.Printf("%d. %s - last updated %s\n", i+1, repo.Name, repo.UpdatedAt.Format("Jan 02, 2006 03:04 PM"))
			batch, err := manager.Commits(ctx, repo, gateway.DefaultCommitLimit)
			if err != nil {
				fail("fetching commits: %v", err)
			}
			if len(batch) == 0 {
				fmt.Println("   No commits found in this repository.")
				continue
			}
			commits = append(commits, batch...)
		}

		mine, others := usecase.PartitionCommitsByAuthor(commits, identity.Login, identity.Name)
		mySummary, otherSummary := usecase.Summarize(mine), usecase.Summarize(others)
		fmt.Printf("\nFiltering commits by %s (username) and %s (full name)\n", identity.Login, identity.Name)
		fmt.Printf("You have made %d commits across %d repositories.\n", mySummary.Commits, mySummary.Repos)
		fmt.Printf("There are %d commits by other authors across %d repositories.\n", otherSummary.Commits, otherSummary.Repos)

		shown := commits
		if mineOnly {
			shown = mine
			if len(shown) == 0 {
				fmt.Println("No commits found for the current user. This might be due to a mismatch between your username/name and the commit author name.")
			}
		}
		for _, c := range shown {
			fmt.Printf("- [%s] %s (%s, %s)\n", c.Repo, c.Message, c.Author, c.Date.Format("Jan 02, 2006 03:04 PM"))
		}

		if output != "" {
			written, err := export.Write(export.CommitTable(shown), export.FormatCSV, output, log.New(os.Stderr, "", 0))
			if err != nil {
				fail("exporting commits: %v", err)
			}
			fmt.Printf("Commits exported to %s\n", written)
		}
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.Flags().Int("limit", 10, "Number of recent repositories to inspect")
	activityCmd.Flags().Bool("mine", false, "Show only commits authored by you")
	activityCmd.Flags().String("output", "", "Export the shown commits to this CSV file")
}
