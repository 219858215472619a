package cli

import (
	"errors"

	"todo/internal/service"

	"github.com/spf13/cobra"
)

func (r *root) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(r.projectListCmd(), r.projectAddCmd(), r.projectShowCmd(),
		r.projectUpdateCmd(), r.projectDeleteCmd())
	return cmd
}

func (r *root) projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "list",
		Short:      "List all projects",
		Args:       cobra.NoArgs,
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, _ []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				info(out, "No projects yet")
				return nil
			}
			for _, p := range projects {
				printProject(out, p)
			}
			return nil
		}),
	}
}

func (r *root) projectAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:        "add NAME",
		Short:      "Create a project",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			p, err := app.Projects.Create(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created project %s", p.Name())
			return nil
		}),
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "project description")
	return cmd
}

func (r *root) projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "show NAME",
		Short:      "Show a project and its tasks",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.List(cmd.Context(), p.Name())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printProject(out, p)
			now := app.Now()
			for _, t := range tasks {
				printTask(out, t, now)
			}
			return nil
		}),
	}
}

func (r *root) projectUpdateCmd() *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:        "update NAME",
		Short:      "Rename a project or change its description",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			var patch service.ProjectPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if patch.Name == nil && patch.Description == nil {
				return errors.New("nothing to update: pass --name and/or --description")
			}
			p, err := app.Projects.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Updated project %s", p.Name())
			return nil
		}),
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "new project name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new project description")
	return cmd
}

func (r *root) projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:        "delete NAME",
		Short:      "Delete a project and all of its tasks",
		Args:       cobra.ExactArgs(1),
		Deprecated: deprecation,
		RunE: r.withApp(func(cmd *cobra.Command, app *App, args []string) error {
			if err := app.Projects.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Deleted project %s", args[0])
			return nil
		}),
	}
}
