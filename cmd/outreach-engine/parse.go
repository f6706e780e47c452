// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/export"
)

var parseCmd = &cobra.Command{
	Use:   "parse <brief-file>",
	Short: "Parse an account brief into structured JSON or YAML",
	Long: `Parse extracts the company, stakeholders, pain points, trigger events,
priority contacts (with inferred personas), and the remaining sections from a
markdown account brief. Missing sections become empty values; parsing never
fails on content.

The result is written to <output_dir>/<basename>.json (or .yaml).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	return withApp(func(a *app) error {
		res, err := a.svc.ParseFile(cmd.Context(), args[0], export.Format(format))
		if err != nil {
			return err
		}

		b := res.Brief
		fmt.Println("Parsed Account Brief:")
		fmt.Printf("Company: %s\n", b.CompanyName)
		fmt.Printf("Contacts: %d\n", len(b.PriorityContacts))
		for _, c := range b.PriorityContacts {
			fmt.Printf("  - %s, %s [%s]\n", c.Name, c.Title, c.Persona.Label())
		}
		fmt.Printf("Pain Points: %d\n", len(b.PainPoints))
		fmt.Printf("\nParsed brief saved to %s\n", filepath.Join(a.cfg.OutputDir, res.File))
		return nil
	})
}

func init() {
	parseCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(parseCmd)
}
