package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/ports"
)

// NewTaskCommand creates the task management command
func NewTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Task management commands",
		Long:  "Create, list, edit, toggle and delete tasks",
	}

	taskCmd.AddCommand(newTaskAddCommand())
	taskCmd.AddCommand(newTaskListCommand())
	taskCmd.AddCommand(newTaskEditCommand())
	taskCmd.AddCommand(newTaskToggleCommand())
	taskCmd.AddCommand(newTaskDeleteCommand())
	taskCmd.AddCommand(newTaskSummaryCommand())

	return taskCmd
}

func newTaskAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			title, _ := cmd.Flags().GetString("title")
			dueStr, _ := cmd.Flags().GetString("due")
			className, _ := cmd.Flags().GetString("class")
			notes, _ := cmd.Flags().GetString("notes")
			priority, _ := cmd.Flags().GetString("priority")
			status, _ := cmd.Flags().GetString("status")

			due, err := time.Parse("2006-01-02", dueStr)
			if err != nil {
				return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", dueStr)
			}

			task, err := a.tasks.CreateTask(ports.CreateTaskRequest{
				Title:     title,
				DueDate:   due,
				ClassName: className,
				Notes:     notes,
				Status:    entities.StatusFromString(status),
				Priority:  entities.PriorityFromString(priority),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().String("title", "", "task title (required)")
	cmd.Flags().String("due", "", "due date, YYYY-MM-DD (required)")
	cmd.Flags().String("class", "", "course name")
	cmd.Flags().String("notes", "", "notes")
	cmd.Flags().String("priority", "medium", "low|medium|high")
	cmd.Flags().String("status", "pending", "pending|in_progress|completed")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			today := time.Now()
			for _, t := range a.tasks.List() {
				printTaskRow(t, today)
			}
			return nil
		},
	}
	return cmd
}

func newTaskEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			req := ports.UpdateTaskRequest{ID: args[0]}
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("due") {
				v, _ := cmd.Flags().GetString("due")
				due, perr := time.Parse("2006-01-02", v)
				if perr != nil {
					return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", v)
				}
				req.DueDate = &due
			}
			if cmd.Flags().Changed("class") {
				v, _ := cmd.Flags().GetString("class")
				req.ClassName = &v
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				req.Notes = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				st := entities.StatusFromString(v)
				req.Status = &st
			}
			if cmd.Flags().Changed("priority") {
				v, _ := cmd.Flags().GetString("priority")
				p := entities.PriorityFromString(v)
				req.Priority = &p
			}

			task, err := a.tasks.UpdateTask(req)
			if err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().String("title", "", "task title")
	cmd.Flags().String("due", "", "due date, YYYY-MM-DD")
	cmd.Flags().String("class", "", "course name")
	cmd.Flags().String("notes", "", "notes")
	cmd.Flags().String("status", "", "pending|in_progress|completed")
	cmd.Flags().String("priority", "", "low|medium|high")

	return cmd
}

func newTaskToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Advance a task one step around the status cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			status, err := a.tasks.ToggleStatus(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Task %s is now %s\n", args[0], status)
			return nil
		},
	}
}

func newTaskDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.tasks.DeleteTask(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s\n", args[0])
			return nil
		},
	}
}

func newTaskSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <task-id>",
		Short: "Print the one-line summary of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			for _, t := range a.tasks.List() {
				if t.ID == args[0] {
					fmt.Println(t.Summary(time.Now()))
					return nil
				}
			}
			return entities.ErrTaskNotFound
		},
	}
}

// NewDashboardCommand creates the dashboard command: due-window tasks sorted
// by due date, one row each.
func NewDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show tasks due within two weeks, either side",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			today := time.Now()
			upcoming := a.tasks.Upcoming(today)
			if len(upcoming) == 0 {
				fmt.Println("Nothing due in the next two weeks.")
				return nil
			}
			for _, t := range upcoming {
				printTaskRow(t, today)
			}
			return nil
		},
	}
}

func printTaskRow(t entities.Task, today time.Time) {
	glyph := map[entities.Status]string{
		entities.StatusPending:    "[ ]",
		entities.StatusInProgress: "[~]",
		entities.StatusCompleted:  "[x]",
	}[t.Status]
	offset := entities.ShortOffsetText(t.DaysUntilDue(today))
	fmt.Printf("%s %s - %s (%s)  id=%s\n", glyph, t.Title, t.ClassName, offset, t.ID)
}
