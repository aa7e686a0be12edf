package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/usecase"
	"github.com/streamgit/streamgit/internal/visualize"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Generate repository visualizations",
	Long: `Renders a chart over the repository data. An output path ending in
.html produces an interactive document with CDN-hosted chart assets;
any other path produces a static image in the requested format.

Types:
  language_distribution  language breakdown of your repositories
  stars_vs_forks         scatter plot comparing stars and forks
  creation_timeline      histogram of repository creation dates`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		kind, _ := cmd.Flags().GetString("type")
		output, _ := cmd.Flags().GetString("output")
		imgFormat, _ := cmd.Flags().GetString("image-format")

		manager := newManager(ctx, cmd, logger)
		records := usecase.RepoRecords(manager.Repositories(), manager.Identity().Login)

		if strings.HasSuffix(strings.ToLower(output), ".html") {
			f, err := os.Create(output)
			if err != nil {
				fail("generating visualization: %v", err)
			}
			defer f.Close()
			if err := visualize.RenderHTML(kind, records, f); err != nil {
				fail("generating visualization: %v", err)
			}
			fmt.Printf("Visualization saved to %s\n", output)
			return
		}

		written, err := visualize.RenderStatic(kind, records, output, imgFormat)
		if err != nil {
			fail("generating visualization: %v", err)
		}
		fmt.Printf("Visualization saved to %s\n", written)
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	visualizeCmd.Flags().String("type", "", "Visualization type: language_distribution, stars_vs_forks, or creation_timeline (required)")
	visualizeCmd.Flags().String("output", "", "Output file name (required)")
	visualizeCmd.Flags().String("image-format", "png", "Image format for static output: png, jpg, svg, or pdf")
	visualizeCmd.MarkFlagRequired("type")
	visualizeCmd.MarkFlagRequired("output")
}
