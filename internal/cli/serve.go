package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/diacheck/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the prediction web form",
	Long: `Start the web form server. The model is loaded before the server
accepts any request; a missing model aborts startup.

Examples:
  diacheck serve              # Start on $DIACHECK_PORT or 8080
  diacheck serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default $DIACHECK_PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	port := a.Config.Port
	if servePort != 0 {
		port = servePort
	}

	server := web.NewServer(port, a.Service, a.Metrics, a.Logger).
		WithShutdownTimeout(a.Config.ShutdownTimeout)
	return server.Start(ctx)
}
