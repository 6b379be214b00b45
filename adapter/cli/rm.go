package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id-prefix>",
	Short:   "Delete a task",
	Aliases: []string{"delete", "remove"},
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

		if err := c.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
			return err
		}

		fmt.Printf("Deleted [%s]\n", id.String()[:8])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
