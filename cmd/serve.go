/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/allbin/zwave-ports/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve endpoint discovery over HTTP",
	Long: `Start an HTTP server exposing discovery as JSON.

Routes:
  GET /healthz
  GET /api/v1/endpoints
  GET /api/v1/endpoint?name=/dev/ttyACM0
  GET /api/v1/validate?name=COM3

Every request performs a fresh scan.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		router := server.NewRouter(scanner, appConfig.Server, logger)
		return server.Run(ctx, appConfig.Server.Addr, router, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default from config, 127.0.0.1:8089)")
	_ = v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
