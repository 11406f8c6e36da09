package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasktorch/core/internal/ports"
)

// NewCourseCommand creates the course management command
func NewCourseCommand() *cobra.Command {
	courseCmd := &cobra.Command{
		Use:   "course",
		Short: "Course management commands",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			name, _ := cmd.Flags().GetString("name")
			instructor, _ := cmd.Flags().GetString("instructor")
			location, _ := cmd.Flags().GetString("location")
			schedule, _ := cmd.Flags().GetString("schedule")

			course, err := a.courses.CreateCourse(ports.CreateCourseRequest{
				Name:       name,
				Instructor: instructor,
				Location:   location,
				Schedule:   schedule,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created course %s\n", course.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "course name (required)")
	addCmd.Flags().String("instructor", "", "instructor")
	addCmd.Flags().String("location", "", "location")
	addCmd.Flags().String("schedule", "", "schedule")
	addCmd.MarkFlagRequired("name")
	courseCmd.AddCommand(addCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			for _, c := range a.courses.List() {
				fmt.Printf("%s  %s", c.ID, c.Name)
				if c.Instructor != "" {
					fmt.Printf(" (%s)", c.Instructor)
				}
				fmt.Println()
			}
			return nil
		},
	}
	courseCmd.AddCommand(listCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <course-id>",
		Short: "Delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.courses.DeleteCourse(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted course %s\n", args[0])
			return nil
		},
	}
	courseCmd.AddCommand(deleteCmd)

	return courseCmd
}
