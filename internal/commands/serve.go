package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwise/writertools/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the writertools web server",
	Long: `Run the web interface: dashboard, log-work form, session timer,
statistics, and plot boards.

The listen address and database path come from writertools.yaml (or the file
given with --config); the --addr flag overrides the configured address.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		server := web.NewServer(cfg)
		fmt.Printf("Listening on %s\n", cfg.Server.Addr)
		if err := server.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}),
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
}
