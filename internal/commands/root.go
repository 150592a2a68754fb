package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwise/writertools/internal/config"
	"github.com/inkwise/writertools/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "writertools",
	Short: "A web app for tracking writing work and plotting stories",
	Long: `writertools combines a word tracker and a plot board.
Log writing sessions with word counts and durations, review your output over
the past week and month, and organize story cards on plot boards. Run the web
interface with 'writertools serve', or track a session right in the terminal
with 'writertools timer'.`,
}

// initApp loads configuration and opens the database, exiting on failure
func initApp() {
	loaded, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded

	if err := db.Initialize(cfg.Database.Path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp wraps a command function to load config and the database first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a writertools.yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
