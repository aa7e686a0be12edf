package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/export"
	"github.com/streamgit/streamgit/internal/usecase"
)

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Export and summarize starred repositories",
	Long: `Fetches the authenticated user's starred repositories, prints a star
summary, and exports the list. The output filename defaults to
YYYYMMDD_starred_repos_username.csv when not given.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		format, _ := cmd.Flags().GetString("data-format")
		output, _ := cmd.Flags().GetString("output")

		manager := newManager(ctx, cmd, logger)
		starred, err := manager.Starred(ctx)
		if err != nil {
			fail("exporting stars: %v", err)
		}

		summary := usecase.SummarizeStarred(starred, 10)
		fmt.Printf("Total starred repositories: %d\n", summary.Total)
		if summary.Total > 0 {
			fmt.Printf("Mean stars: %.1f, median stars: %.1f\n", summary.MeanStars, summary.MedianStars)
			fmt.Println("Most starred:")
			for i, s := range summary.Top {
				fmt.Printf("  %d. %s/%s (%d stars, %s)\n", i+1, s.Owner, s.Name, s.Stars, s.Language)
			}
		}

		if output == "" {
			output = export.DefaultFilename("starred_repos", manager.Identity().Login, time.Now())
		}
		written, err := export.Write(export.StarTable(starred), format, output, log.New(os.Stderr, "", 0))
		if err != nil {
			fail("exporting stars: %v", err)
		}
		fmt.Printf("Starred repositories exported to %s\n", written)
	},
}

func init() {
	rootCmd.AddCommand(starsCmd)
	starsCmd.Flags().String("data-format", "csv", "Export format: csv or xlsx")
	starsCmd.Flags().String("output", "", "Output file name (defaults to a dated filename)")
}
