package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/export"
	"github.com/streamgit/streamgit/internal/usecase"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export repository data to CSV",
	Long: `Exports the full repository table to a file. CSV is written with a
header row and no index column. Requesting xlsx prints a warning and
writes CSV with a .csv extension instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		format, _ := cmd.Flags().GetString("data-format")
		output, _ := cmd.Flags().GetString("output")

		manager := newManager(ctx, cmd, logger)
		records := usecase.RepoRecords(manager.Repositories(), manager.Identity().Login)
		table := export.RepoTable(records)

		written, err := export.Write(table, format, output, log.New(os.Stderr, "", 0))
		if err != nil {
			fail("exporting data: %v", err)
		}
		fmt.Printf("Data exported to %s\n", written)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("data-format", "", "Export format: csv or xlsx (required)")
	exportCmd.Flags().String("output", "", "Output file name (required)")
	exportCmd.MarkFlagRequired("data-format")
	exportCmd.MarkFlagRequired("output")
}
