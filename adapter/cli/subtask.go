package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Work with a task's subtasks",
}

var subtaskDoneCmd = &cobra.Command{
	Use:   "done <id-prefix> <n>",
	Short: "Toggle the n-th subtask of a task",
	Long: `Toggle a subtask by its position in the list output (1-based).

Example:
  mindfuldo subtask done ab12 2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		id, err := resolveTaskID(cmd.Context(), c, args[0])
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("subtask position must be a positive number, got %q", args[1])
		}

		dto, err := c.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: id})
		if err != nil {
			return err
		}
		if n > len(dto.Subtasks) {
			return fmt.Errorf("task has %d subtasks, position %d does not exist", len(dto.Subtasks), n)
		}
		subtask := dto.Subtasks[n-1]

		err = c.ToggleSubtaskHandler.Handle(cmd.Context(), commands.ToggleSubtaskCommand{
			TaskID:    id,
			SubtaskID: subtask.ID,
		})
		if err != nil {
			return err
		}

		if subtask.Completed {
			fmt.Printf("Reopened subtask: %s\n", subtask.Title)
		} else {
			fmt.Printf("Done subtask: %s\n", subtask.Title)
		}
		return nil
	},
}

func init() {
	subtaskCmd.AddCommand(subtaskDoneCmd)
	rootCmd.AddCommand(subtaskCmd)
}
