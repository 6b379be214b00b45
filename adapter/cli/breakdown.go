package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <id-prefix>",
	Short: "Break a task into subtasks with the assistant",
	Long: `Ask the assistant to break a task into 3-5 actionable steps, which
are appended to the task as subtasks.

Example:
  mindfuldo breakdown ab12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		id, err := resolveTaskID(cmd.Context(), c, args[0])
		if err != nil {
			return err
		}

		subtasks, err := c.Assistant.BreakdownTask(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(subtasks) == 0 {
			fmt.Println("No steps suggested. Is GEMINI_API_KEY configured?")
			return nil
		}

		fmt.Printf("Added %d subtasks:\n", len(subtasks))
		for _, st := range subtasks {
			fmt.Printf("  [ ] %s\n", st.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}
