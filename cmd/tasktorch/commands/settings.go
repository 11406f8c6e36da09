package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/ports"
)

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			s := a.settings.Get()
			fmt.Printf("theme:                   %s\n", s.Theme)
			fmt.Printf("dailyReminder:           %t\n", s.DailyReminder)
			fmt.Printf("remindDaysBeforeDue:     %d\n", s.RemindDaysBeforeDue)
			fmt.Printf("externalCalendarEnabled: %t\n", s.ExternalCalendarEnabled)
			return nil
		},
	}
	settingsCmd.AddCommand(showCmd)

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; unspecified flags keep their stored value",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			current := a.settings.Get()
			req := ports.UpdateSettingsRequest{
				Theme:                   current.Theme,
				DailyReminder:           current.DailyReminder,
				RemindDaysBeforeDue:     current.RemindDaysBeforeDue,
				ExternalCalendarEnabled: current.ExternalCalendarEnabled,
			}

			if cmd.Flags().Changed("theme") {
				v, _ := cmd.Flags().GetString("theme")
				req.Theme = entities.ThemeFromString(v)
			}
			if cmd.Flags().Changed("daily-reminder") {
				req.DailyReminder, _ = cmd.Flags().GetBool("daily-reminder")
			}
			if cmd.Flags().Changed("remind-days") {
				req.RemindDaysBeforeDue, _ = cmd.Flags().GetInt("remind-days")
			}
			if cmd.Flags().Changed("external-calendar") {
				req.ExternalCalendarEnabled, _ = cmd.Flags().GetBool("external-calendar")
			}

			updated, err := a.settings.Update(req)
			if err != nil {
				return err
			}
			a.sess.SetTheme(updated.Theme)
			fmt.Println("Settings saved")
			return nil
		},
	}
	setCmd.Flags().String("theme", "", "light|dark")
	setCmd.Flags().Bool("daily-reminder", false, "enable daily reminders")
	setCmd.Flags().Int("remind-days", 1, "days before due date to remind (1-30)")
	setCmd.Flags().Bool("external-calendar", false, "enable external calendar sync")
	settingsCmd.AddCommand(setCmd)

	return settingsCmd
}

// NewCalendarCommand creates the external-calendar command
func NewCalendarCommand() *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "External calendar commands",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report the external-calendar connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if a.cal.svc.IsConnected() {
				fmt.Println("Connected")
			} else {
				fmt.Printf("Not connected (expects %s and tokens under %s)\n",
					a.cal.credentialsPath, a.cal.tokensDir)
			}
			return nil
		},
	}
	calendarCmd.AddCommand(statusCmd)

	disconnectCmd := &cobra.Command{
		Use:   "disconnect",
		Short: "Remove stored calendar tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.cal.svc.Disconnect(); err != nil {
				return err
			}
			fmt.Println("Disconnected")
			return nil
		},
	}
	calendarCmd.AddCommand(disconnectCmd)

	return calendarCmd
}
