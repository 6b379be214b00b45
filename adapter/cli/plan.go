package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Ask the assistant for a day plan",
	Long: `Ask the assistant to order your active tasks for the day, with a
short reason for the top recommendations.

Example:
  mindfuldo plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		recommendations, err := c.Assistant.PlanDay(cmd.Context())
		if err != nil {
			return err
		}
		if len(recommendations) == 0 {
			fmt.Println("Nothing to plan. Either all tasks are done, or the assistant is unavailable.")
			return nil
		}

		fmt.Println("Suggested order:")
		for i, r := range recommendations {
			fmt.Printf("%d. [%s] %s (%s)\n", i+1, r.TaskID.String()[:8], r.Title, r.Priority)
			if r.Reason != "" {
				fmt.Printf("   %s\n", r.Reason)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
