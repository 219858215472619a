package cli

import (
	"todo/internal/config"

	"github.com/spf13/cobra"
)

const deprecation = "use the REST API served by todo-server instead"

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

type root struct {
	connect    Connector
	loadConfig func() (*config.Config, error)
	inMemory   bool
}

// NewRootCmd builds the command tree. connect opens the store for commands
// that need one; loadConfig serves the commands that only read settings.
func NewRootCmd(connect Connector, loadConfig func() (*config.Config, error)) *cobra.Command {
	r := &root{connect: connect, loadConfig: loadConfig}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage projects and tasks from the terminal",
		Long: `todo manages projects and their tasks against the same store as todo-server.
It also runs the overdue-task autoclose sweep, applies migrations and mints API tokens.

With --memory every invocation starts from an empty store that is discarded when the
command exits, so data does not carry over between commands.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().BoolVar(&r.inMemory, "memory", false,
		"use an in-memory store that lasts for this one command only; nothing is saved")

	cmd.AddCommand(r.projectCmd())
	cmd.AddCommand(r.taskCmd())
	cmd.AddCommand(r.autocloseCmd())
	cmd.AddCommand(r.schedulerCmd())
	cmd.AddCommand(r.migrateCmd())
	cmd.AddCommand(r.tokenCmd())
	return cmd
}

// Execute runs the command tree against the configured store.
func Execute() error {
	return NewRootCmd(Connect, config.Load).Execute()
}

// withApp wraps a command function to open the store first
func (r *root) withApp(fn func(*cobra.Command, *App, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := r.connect(r.inMemory)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(cmd, app, args)
	}
}
