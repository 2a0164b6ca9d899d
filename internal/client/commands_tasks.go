package client

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		a.listTasksCommand(),
		a.getTaskCommand(),
		a.createTaskCommand(),
		a.updateTaskCommand(),
		a.deleteTaskCommand(),
	)

	return cmd
}

func (a *App) listTasksCommand() *cobra.Command {
	var req models.ListTasksRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := a.api.ListTasks(cmd.Context(), req)
			if err != nil {
				return err
			}

			return a.print(tasks)
		},
	}

	cmd.Flags().StringVar(&req.Status, "status", "", "only list tasks with this status (completed or incomplete; anything else lists all)")

	return cmd
}

func (a *App) getTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := a.api.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.print(task)
		},
	}
}

func (a *App) createTaskCommand() *cobra.Command {
	var (
		userID      int64
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an incomplete task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.CreateTaskRequest{UserID: &userID, Title: title}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}

			task, err := a.api.CreateTask(cmd.Context(), req)
			if err != nil {
				return err
			}

			return a.print(task)
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "owner of the task")
	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (a *App) updateTaskCommand() *cobra.Command {
	var title, description, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title, description or status of a task",
		Long: `Change the title, description or status of a task.

Only the flags that are given are sent; the rest of the task is unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			var req models.UpdateTaskRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if req.Title == nil && req.Description == nil && req.Status == nil {
				return fmt.Errorf("nothing to update: pass --title, --description or --status")
			}

			task, err := a.api.UpdateTask(cmd.Context(), id, req)
			if err != nil {
				return err
			}

			return a.print(task)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "new status (completed or incomplete)")

	return cmd
}

func (a *App) deleteTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := a.api.DeleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.print(models.DeleteTaskResponse{Message: "Task deleted successfully", Task: task})
		},
	}
}

func parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("task id must be an integer, got %q", raw)
	}

	return id, nil
}
