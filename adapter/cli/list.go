package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
)

var listActiveOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, active first, each with its short ID.

Examples:
  mindfuldo list
  mindfuldo list --active`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		tasks, err := c.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			ActiveOnly: listActiveOnly,
		})
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks. Add one with: mindfuldo add \"...\"")
			return nil
		}

		for _, t := range tasks {
			printTask(t)
		}
		return nil
	},
}

func printTask(t queries.TaskDTO) {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	line := fmt.Sprintf("%s [%s] %-6s %s", check, t.ID.String()[:8], t.Priority, t.Title)
	if t.DueDate != nil {
		line += fmt.Sprintf("  (due %s)", formatDue(*t.DueDate))
	}
	fmt.Println(line)

	for _, st := range t.Subtasks {
		subCheck := " "
		if st.Completed {
			subCheck = "x"
		}
		fmt.Printf("      [%s] %s\n", subCheck, st.Title)
	}
}

func formatDue(due time.Time) string {
	due = due.Local()
	if due.Year() == time.Now().Year() {
		return due.Format("Jan 2 15:04")
	}
	return due.Format("2006-01-02 15:04")
}

func init() {
	listCmd.Flags().BoolVar(&listActiveOnly, "active", false, "show only incomplete tasks")
	rootCmd.AddCommand(listCmd)
}
