package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all repositories",
	Long:  `Lists every repository visible to the authenticated user, most recently updated first, with a public/private breakdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		manager := newManager(ctx, cmd, logger)

		repos := manager.Repositories()
		stats := manager.Statistics()
		fmt.Printf("Found %d repositories:\n", stats.Total)
		if stats.Total > 0 {
			fmt.Printf("    Public:  %d (%.1f%%)\n", stats.Public, percent(stats.Public, stats.Total))
			fmt.Printf("    Private: %d (%.1f%%)\n", stats.Private, percent(stats.Private, stats.Total))
		}
		fmt.Println("\nRepository List:")
		for i, repo := range repos {
			visibility := "(public)"
			if repo.Private {
				visibility = "(private)"
			}
			fmt.Printf("%d. %s - %s %s\n", i+1, repo.Name, repo.Description, visibility)
		}
	},
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func init() {
	rootCmd.AddCommand(listCmd)
}
