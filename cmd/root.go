// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/config"
	"github.com/streamgit/streamgit/internal/gateway"
)

var rootCmd = &cobra.Command{
	Use:   "streamgit",
	Short: "GitHub repository analytics and management from the command line.",
	Long: `streamgit is a CLI tool for GitHub analytics: repository statistics,
activity tracking, data export, star analysis, visualizations, and
repository management. A web dashboard with the same features is
available via the dashboard command.

A GitHub Personal Access Token is required, with the repo, delete_repo,
read:user, and user:email scopes. The token is read from --token, the
GITHUB_TOKEN environment variable, a token.env or .env file, or an
interactive prompt, in that order.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("token", "", "GitHub Personal Access Token (overrides environment and files)")
}

// newLogger builds the command logger: silent unless --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// newManager resolves the token and constructs the authenticated manager.
// Failures are fatal: the message is printed and the process exits 1.
func newManager(ctx context.Context, cmd *cobra.Command, logger *log.Logger) *gateway.Manager {
	tokenFlag, _ := cmd.InheritedFlags().GetString("token")
	token, err := config.ResolveToken(tokenFlag, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	manager, err := gateway.NewManager(ctx, token, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return manager
}

// fail prints a handled error with the fixed prefix and exits non-zero.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
