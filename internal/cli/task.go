package cli

import (
	"todo/internal/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type taskFlags struct {
	title       string
	description string
	status      string
	deadline    string
}

func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.title, "title", "t", "", "task title")
	fs.StringVarP(&f.description, "description", "d", "", "task description")
	fs.StringVarP(&f.status, "status", "s", string(domain.StatusTodo), "todo, doing or done")
	fs.StringVar(&f.deadline, "deadline", "", "ISO 8601 deadline, e.g. 2026-10-31T17:00")
}

func (f *taskFlags) fields() domain.TaskFields {
	deadline := domain.NoDeadline()
	if f.deadline != "" {
		deadline = domain.DeadlineText(f.deadline)
	}
	return domain.TaskFields{
		Title:       f.title,
		Description: f.description,
		Status:      f.status,
		Deadline:    deadline,
	}
}

// merge takes the flags that were passed and fills the rest from current.
func (f *taskFlags) merge(fs *pflag.FlagSet, current *domain.Task) domain.TaskFields {
	fields := domain.TaskFields{
		Title:       current.Title(),
		Description: current.Description(),
		Status:      current.Status().String(),
		Deadline:    domain.KeepDeadline(current.Deadline()),
	}
	if fs.Changed("title") {
		fields.Title = f.title
	}
	if fs.Changed("description") {
		fields.Description = f.description
	}
	if fs.Changed("status") {
		fields.Status = f.status
	}
	if fs.Changed("deadline") {
		fields.Deadline = f.fields().Deadline
	}
	return fields
}

func (r *root) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage the tasks of a project",
	}
	cmd.AddCommand(r.taskListCmd(), r.taskAddCmd(), r.taskShowCmd(),
		r.taskUpdateCmd(), r.taskStatusCmd(), r.taskDeleteCmd())
	return cmd
}

func (r *root) taskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "list PROJECT",
		Short:      "List the tasks of a project",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			tasks, err := app.Tasks.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				info(out, "No tasks in %s", args[0])
				return nil
			}
			now := app.Now()
			for _, t := range tasks {
				printTask(out, t, now)
			}
			return nil
		}),
	}
}

func (r *root) taskAddCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:        "add PROJECT",
		Short:      "Add a task to a project",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			t, err := app.Tasks.Create(cmd.Context(), args[0], flags.fields())
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created task %s in %s", t.ID(), args[0])
			return nil
		}),
	}
	flags.register(cmd.Flags())
	return cmd
}

func (r *root) taskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "show PROJECT ID",
		Short:      "Show one task",
		Args:       cobra.ExactArgs(2),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			t, err := app.Tasks.Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printTaskDetail(cmd.OutOrStdout(), t, app.Now())
			return nil
		}),
	}
}

func (r *root) taskUpdateCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "update PROJECT ID",
		Short: "Change the fields of a task",
		Long: `Change the title, description, status or deadline of a task.
Only the flags you pass are changed; the rest keep their current value.
Pass --deadline "" to remove the deadline.`,
		Args:       cobra.ExactArgs(2),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			current, err := app.Tasks.Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fields := flags.merge(cmd.Flags(), current)
			t, err := app.Tasks.Update(cmd.Context(), args[0], args[1], fields)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Updated task %s", t.ID())
			return nil
		}),
	}
	flags.register(cmd.Flags())
	return cmd
}

func (r *root) taskStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "status PROJECT ID STATUS",
		Short:      "Move a task to todo, doing or done",
		Args:       cobra.ExactArgs(3),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			t, err := app.Tasks.UpdateStatus(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Task %s is now %s", t.ID(), t.Status())
			return nil
		}),
	}
}

func (r *root) taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "delete PROJECT ID",
		Short:      "Delete a task",
		Args:       cobra.ExactArgs(2),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			if err := app.Tasks.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Deleted task %s", args[1])
			return nil
		}),
	}
}
