package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/gateway"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new repository",
	Long:  `Creates a repository under the authenticated user's account. Optional fields are omitted from the request when not supplied.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		private, _ := cmd.Flags().GetBool("private")
		autoInit, _ := cmd.Flags().GetBool("auto-init")
		gitignore, _ := cmd.Flags().GetString("gitignore")
		license, _ := cmd.Flags().GetString("license")

		manager := newManager(ctx, cmd, logger)
		created, err := manager.Create(ctx, gateway.CreateOptions{
			Name:              name,
			Description:       description,
			Private:           private,
			AutoInit:          autoInit,
			GitignoreTemplate: gitignore,
			LicenseTemplate:   license,
		})
		if err != nil {
			fail("creating repository: %v", err)
		}
		fmt.Printf("Repository created: %s\n", created.URL)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().String("name", "", "Repository name (required)")
	createCmd.Flags().String("description", "", "Repository description")
	createCmd.Flags().Bool("private", false, "Make the repository private")
	createCmd.Flags().Bool("auto-init", false, "Initialize with a README")
	createCmd.Flags().String("gitignore", "", "Gitignore template name (e.g. Go, Python)")
	createCmd.Flags().String("license", "", "License template name (e.g. mit, gpl-3.0)")
	createCmd.MarkFlagRequired("name")
}
