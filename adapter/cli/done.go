package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
)

var doneCmd = &cobra.Command{
	Use:   "done <id-prefix>",
	Short: "Toggle a task's completion",
	Long: `Mark a task done, or mark a done task active again. The first few
characters of the ID are enough.

Examples:
  mindfuldo done ab12
  mindfuldo done ab12   # again: reopens the task`,
	Aliases: []string{"toggle", "x"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		id, err := resolveTaskID(cmd.Context(), c, args[0])
		if err != nil {
			return err
		}

		result, err := c.ToggleTaskHandler.Handle(cmd.Context(), commands.ToggleTaskCommand{TaskID: id})
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Println("Task not found.")
			return nil
		}

		if result.Completed {
			fmt.Printf("Done [%s]\n", id.String()[:8])
		} else {
			fmt.Printf("Reopened [%s]\n", id.String()[:8])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
