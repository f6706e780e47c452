// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var briefCmd = &cobra.Command{
	Use:   "brief <research-file>",
	Short: "Generate an account brief from a research document",
	Long: `Brief turns a research document into a twelve-section account brief and
writes it to <output_dir>/<company>_brief.md.

The generator is chosen by brief.generator: template (default, no API key),
claude, or gemini. When --company is empty the company name is taken from
the generated brief.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrief,
}

func runBrief(cmd *cobra.Command, args []string) error {
	company, _ := cmd.Flags().GetString("company")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading research %s: %w", args[0], err)
	}

	return withApp(func(a *app) error {
		fmt.Fprintf(os.Stderr, "Generating account brief with the %s generator...\n", a.cfg.Brief.Generator)
		res, err := a.svc.Brief(cmd.Context(), company, string(data))
		if err != nil {
			return err
		}
		fmt.Printf("Account brief saved to %s\n", filepath.Join(a.cfg.OutputDir, res.File))
		return nil
	})
}

func init() {
	briefCmd.Flags().String("company", "", "company name used for the brief and its file name")

	rootCmd.AddCommand(briefCmd)
}
