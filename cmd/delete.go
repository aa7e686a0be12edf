package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an existing repository",
	Long:  `Deletes one of the authenticated user's repositories by name. Requires the delete_repo token scope and admin rights on the repository.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		name, _ := cmd.Flags().GetString("name")

		manager := newManager(ctx, cmd, logger)
		if err := manager.Delete(ctx, name); err != nil {
			fail("deleting repository: %v", err)
		}
		fmt.Printf("Repository %s deleted\n", name)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().String("name", "", "Repository name (required)")
	deleteCmd.MarkFlagRequired("name")
}
