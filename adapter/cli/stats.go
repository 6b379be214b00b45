package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily completion statistics",
	Long: `Show how many tasks you completed on each of the last seven
recorded days.

Example:
  mindfuldo stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireContainer()
		if err != nil {
			return err
		}

		history := c.StatsAggregator.History(cmd.Context())
		if len(history) == 0 {
			fmt.Println("No completions recorded yet.")
			return nil
		}

		fmt.Println("Completed tasks per day:")
		for _, entry := range history {
			bar := strings.Repeat("#", entry.CompletedCount)
			fmt.Printf("%s  %-20s %d\n", entry.Date, bar, entry.CompletedCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
