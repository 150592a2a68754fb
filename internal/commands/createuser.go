package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkwise/writertools/internal/db"
)

var createUserCmd = &cobra.Command{
	Use:   "createuser <username>",
	Short: "Create a user account",
	Long: `Create a user account for the web interface and CLI tools.
The password is read from the terminal without echo.

Examples:
  writertools createuser alice
  writertools createuser alice --email alice@example.com`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		username := args[0]
		email, _ := cmd.Flags().GetString("email")

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}

		fmt.Print("Confirm password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}

		if string(password) != string(confirm) {
			fmt.Fprintln(os.Stderr, "Error: passwords do not match")
			os.Exit(1)
		}
		if len(password) == 0 {
			fmt.Fprintln(os.Stderr, "Error: password must not be empty")
			os.Exit(1)
		}

		user, err := db.CreateUser(username, email, string(password))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Created user %q (id %d)\n", user.Username, user.ID)
	}),
}

func init() {
	createUserCmd.Flags().String("email", "", "email address for the account")
}
