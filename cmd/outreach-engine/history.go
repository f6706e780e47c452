// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/archive"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export archived pipeline runs",
	Long: `History lists runs recorded in the SQLite archive, newest first. Filters
narrow by company (case-insensitive substring), kind (research, brief, parse,
emails, workflow), or failure.

With --export the matching runs are written to a file instead; the extension
(.yaml, .yml, or .json) picks the format.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	opts := listOptsFromFlags(cmd)
	exportPath, _ := cmd.Flags().GetString("export")
	asJSON, _ := cmd.Flags().GetBool("json")

	return withApp(func(a *app) error {
		if exportPath != "" {
			return exportHistory(cmd, a, exportPath, opts)
		}

		runs, err := a.svc.History(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}
		formatHistory(os.Stdout, runs)
		return nil
	})
}

func exportHistory(cmd *cobra.Command, a *app, path string, opts archive.ListOptions) error {
	if a.store == nil {
		return pipeline.ErrArchiveDisabled
	}
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = a.store.ExportYAML(cmd.Context(), path, opts)
	case ".json":
		err = a.store.ExportJSON(cmd.Context(), path, opts)
	default:
		return fmt.Errorf("unsupported export extension %q: use .yaml or .json", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func formatHistory(w io.Writer, runs []types.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-19s  %-8s  %-24s  %-6s  %-6s  %s\n",
		"Started", "Kind", "Company", "Status", "Emails", "Files")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range runs {
		company := r.Company
		if len(company) > 24 {
			company = company[:21] + "..."
		}
		files := strings.Join(r.Files, ", ")
		if r.Status == types.RunFailed {
			files = r.Error
		}
		fmt.Fprintf(w, "%-19s  %-8s  %-24s  %-6s  %-6d  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Kind, company, r.Status, r.Emails, files)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}

func listOptsFromFlags(cmd *cobra.Command) archive.ListOptions {
	company, _ := cmd.Flags().GetString("company")
	kind, _ := cmd.Flags().GetString("kind")
	failed, _ := cmd.Flags().GetBool("failed")
	limit, _ := cmd.Flags().GetInt("limit")
	return archive.ListOptions{
		Company:    company,
		Kind:       types.RunKind(kind),
		FailedOnly: failed,
		Limit:      limit,
	}
}

func init() {
	historyCmd.Flags().String("company", "", "filter by company name (substring)")
	historyCmd.Flags().String("kind", "", "filter by run kind: research, brief, parse, emails, workflow")
	historyCmd.Flags().Bool("failed", false, "only failed runs")
	historyCmd.Flags().Int("limit", 0, "maximum runs (0 = 20, negative = all)")
	historyCmd.Flags().String("export", "", "write matching runs to a .yaml or .json file")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
