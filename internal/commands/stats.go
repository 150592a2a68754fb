package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show writing statistics",
	Long: `Show session counts, word counts, and total time for the past 7
days, past 30 days, and all time. All three windows exclude today.

Examples:
  writertools stats -u alice`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := mustLookupUser(cmd)

		summary, err := db.SummaryForUser(user.ID, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Writing statistics for %s\n\n", user.Username)
		fmt.Printf("%-12s %10s %12s %10s\n", "Window", "Sessions", "Words", "Time")
		printStatsRow("Past 7 days", summary.SevenDay)
		printStatsRow("Past 30 days", summary.ThirtyDay)
		printStatsRow("All time", summary.All)
	}),
}

func printStatsRow(label string, s stats.Stats) {
	words := "-"
	if s.WordCount != nil {
		words = fmt.Sprintf("%d", *s.WordCount)
	}
	duration := "-"
	if s.DurationSeconds != nil {
		duration = formatSeconds(*s.DurationSeconds)
	}
	fmt.Printf("%-12s %10d %12s %10s\n", label, s.Sessions, words, duration)
}

// formatSeconds formats a whole-second duration in a human-readable way
func formatSeconds(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "username to show statistics for")
}
