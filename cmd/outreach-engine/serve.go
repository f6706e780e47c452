// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline operations as a JSON HTTP API",
	Long: `Serve starts the HTTP API:

  GET  /api/health     liveness
  POST /api/research   {companyName, website?, linkedInUrl?}
  POST /api/brief      {research, companyName?}
  POST /api/parse      {brief, fileName?, format?}
  POST /api/emails     {accountBrief, options?}
  POST /api/workflow   {companyName, website?, linkedInUrl?, emailOptions?}
  GET  /api/history    ?company=&kind=&failed=&limit=
  GET  /output/<file>  generated artifacts
  GET  /metrics        Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		cfg := a.cfg.Server
		if cmd.Flags().Changed("host") {
			cfg.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}

		srv := server.New(a.svc, cfg, a.cfg.OutputDir,
			server.WithLogger(a.logger),
			server.WithMetrics(a.metrics, a.registry))
		fmt.Fprintf(os.Stderr, "Server running on http://%s\n", srv.Addr())
		return srv.Run(cmd.Context())
	})
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (overrides server.host)")
	serveCmd.Flags().Int("port", 3000, "listen port (overrides server.port)")

	rootCmd.AddCommand(serveCmd)
}
