package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display statistics for all repositories",
	Long: `Computes aggregate statistics over every repository visible to the
authenticated user: totals, ownership, visibility, forks, and archival
state.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		manager := newManager(ctx, cmd, logger)

		stats := manager.Statistics()
		fmt.Println("Repository Statistics:")
		for i, metric := range stats.Metrics(manager.Identity().Login) {
			fmt.Printf("  %d. %s: %d\n", i+1, metric.Label, metric.Value)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
