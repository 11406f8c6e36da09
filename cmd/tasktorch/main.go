package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasktorch/core/cmd/tasktorch/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasktorch",
		Short: "TaskTorch assignment tracker",
		Long:  `TaskTorch is a personal task and assignment tracker: tasks tied to courses, with due dates, priorities, status toggling and optional external-calendar linkage.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewTaskCommand())
	rootCmd.AddCommand(commands.NewCourseCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewCalendarCommand())
	rootCmd.AddCommand(commands.NewDashboardCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
