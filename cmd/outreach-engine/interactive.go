// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive menu (default with no subcommand)",
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		d := interactive.New(a.svc, interactive.TermPrompter{}, os.Stdout, a.cfg.OutputDir)
		return d.Run(cmd.Context())
	})
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
