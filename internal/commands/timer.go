package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/models"
	"github.com/inkwise/writertools/internal/tui"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Track a writing session in the terminal",
	Long: `Start an in-progress work session and show a live timer. Finishing
the timer asks for the words written and closes out the session, exactly like
the web timer page. Leaving the timer keeps the session in progress so it can
be closed out later from the log-work form.

Examples:
  writertools timer -u alice            # Session without a project
  writertools timer -u alice -p 3       # Session logged to project #3`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := mustLookupUser(cmd)

		var project *models.Project
		if projectStr, _ := cmd.Flags().GetString("project"); projectStr != "" {
			projectID, err := strconv.ParseUint(projectStr, 10, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid project ID '%s'\n", projectStr)
				os.Exit(1)
			}
			project, err = db.GetProject(user.ID, uint(projectID))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		if err := tui.RunSessionTimer(user, project); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}),
}

// mustLookupUser resolves the --user flag, exiting on failure
func mustLookupUser(cmd *cobra.Command) *models.User {
	username, _ := cmd.Flags().GetString("user")
	if username == "" {
		fmt.Fprintln(os.Stderr, "Error: --user is required")
		os.Exit(1)
	}

	user, err := db.GetUserByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return user
}

func init() {
	timerCmd.Flags().StringP("user", "u", "", "username to log the session for")
	timerCmd.Flags().StringP("project", "p", "", "project ID to log the session to")
}
