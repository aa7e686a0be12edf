package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/streamgit/streamgit/internal/config"
	"github.com/streamgit/streamgit/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive web dashboard",
	Long: `Starts a local HTTP server with the full analytics dashboard: stats,
activity, data, visualizations, stars, and create/delete forms. The
listen address comes from --addr, or STREAMGIT_HOST and STREAMGIT_PORT.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The dashboard is a foreground server; it always logs.
		logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			cfg, err := config.LoadDashboardConfig()
			if err != nil {
				fail("starting dashboard: %v", err)
			}
			addr = cfg.Addr()
		}

		manager := newManager(ctx, cmd, logger)
		server := dashboard.NewServer(manager, logger)
		if err := server.Run(ctx, addr); err != nil {
			fail("dashboard server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().String("addr", "", "Listen address, host:port (overrides environment)")
}
