package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		// Migrations run as part of opening the database.
		fmt.Println("Database schema is up to date.")
	}),
}
