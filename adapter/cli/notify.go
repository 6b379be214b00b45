package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/notifications/domain"
	"github.com/mindfuldo/mindfuldo/internal/notifications/infrastructure"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage due-date reminders",
}

var notifyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the notification permission",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		permission := c.Preferences.Permission(cmd.Context())
		fmt.Printf("Notifications: %s\n", permission)
		if permission == domain.PermissionDefault {
			fmt.Println("Enable reminders with: mindfuldo notify enable")
		}
		return nil
	},
}

var notifyEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Allow due-date reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		if err := c.Preferences.SetPermission(cmd.Context(), domain.PermissionGranted); err != nil {
			return err
		}
		fmt.Println("Reminders enabled. Run them with: mindfuldo notify watch")
		return nil
	},
}

var notifyDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Suppress due-date reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		if err := c.Preferences.SetPermission(cmd.Context(), domain.PermissionDenied); err != nil {
			return err
		}
		fmt.Println("Reminders disabled.")
		return nil
	},
}

var notifyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single reminder check now",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		worker := c.NewDueSoonWorker(infrastructure.NewConsoleAlerter(os.Stdout))
		sent, err := worker.CheckOnce(cmd.Context())
		if err != nil {
			return err
		}
		if sent == 0 {
			fmt.Println("Nothing due in the next 15 minutes.")
		}
		return nil
	},
}

var notifyWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for tasks due soon and print reminders",
	Long: `Check every minute for tasks due in about fifteen minutes and print
a reminder for each. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		if !c.Preferences.Permission(cmd.Context()).CanNotify() {
			fmt.Println("Notifications are not enabled. Run: mindfuldo notify enable")
			return nil
		}

		worker := c.NewDueSoonWorker(infrastructure.NewConsoleAlerter(os.Stdout))
		fmt.Println("Watching for due tasks. Press Ctrl+C to stop.")
		return worker.Run(cmd.Context())
	},
}

func init() {
	notifyCmd.AddCommand(notifyStatusCmd, notifyEnableCmd, notifyDisableCmd, notifyCheckCmd, notifyWatchCmd)
	rootCmd.AddCommand(notifyCmd)
}
