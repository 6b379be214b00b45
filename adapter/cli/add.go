package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
)

var (
	addPriority string
	addDue      string
	addSuggest  bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Add a task with an optional priority and due date.

Examples:
  mindfuldo add "Buy groceries"
  mindfuldo add "Finish report" -p High --due "2026-09-01 17:00"
  mindfuldo add "Water plants" --due 45m
  mindfuldo add "Prepare slides" --suggest`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")

		var due *time.Time
		if addDue != "" {
			parsed, err := parseDue(addDue, time.Now())
			if err != nil {
				return err
			}
			due = &parsed
		}

		priority := addPriority
		if priority == "" && addSuggest {
			priority = c.Assistant.SuggestPriority(cmd.Context(), title, due)
			fmt.Printf("Suggested priority: %s\n", priority)
		}

		result, err := c.AddTaskHandler.Handle(cmd.Context(), commands.AddTaskCommand{
			Title:    title,
			Priority: priority,
			DueDate:  due,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added [%s] %s\n", result.TaskID.String()[:8], title)
		if due != nil {
			fmt.Printf("  due %s\n", due.Format("Mon Jan 2 15:04"))
		}
		return nil
	},
}

// parseDue accepts an absolute timestamp, a date, or a duration offset from
// now ("45m", "2h").
func parseDue(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	if d, err := time.ParseDuration(input); err == nil {
		return now.Add(d), nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse due date %q (use RFC3339, \"2006-01-02 15:04\", \"2006-01-02\", or a duration like 45m)", input)
}

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: Low, Medium, or High")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date or duration from now")
	addCmd.Flags().BoolVar(&addSuggest, "suggest", false, "ask the assistant to suggest a priority")
	rootCmd.AddCommand(addCmd)
}
