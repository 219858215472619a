package cli

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"todo/internal/database"
	"todo/internal/job"

	"github.com/spf13/cobra"
)

func (r *root) autocloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autoclose",
		Short: "Close every overdue task once",
		Args:  cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, _ []string) error {
			summary, err := app.Sweeper.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if summary.ClosedCount == 0 {
				info(out, "No overdue tasks to close")
				return nil
			}
			success(out, "Closed %d overdue task(s): %s", summary.ClosedCount, strings.Join(summary.ClosedIDs, ", "))
			return nil
		}),
	}
}

func (r *root) schedulerCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the autoclose sweep on an interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, _ []string) error {
			every := interval
			if every <= 0 {
				every = app.Config.AutocloseInterval
			}
			if every <= 0 {
				every = job.DefaultInterval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info(cmd.OutOrStdout(), "Sweeping every %s, press Ctrl+C to stop", every)
			app.Sweeper.Run(ctx, every)
			return nil
		}),
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between sweeps (default AUTOCLOSE_INTERVAL)")
	return cmd
}

func (r *root) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, _ []string) error {
			if app.DB == nil {
				info(cmd.OutOrStdout(), "The in-memory store needs no migrations")
				return nil
			}
			if err := database.Migrate(app.Config, app.DB, app.Logger); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Schema is up to date (%s)", app.Config.DBDriver)
			return nil
		}),
	}
}
