// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Research a company, write its brief, and generate email sequences",
	Long: `Workflow runs research, brief generation, parsing, and email generation in
sequence, saving the research, the brief, and the CSV export. The first
failing step stops the run.`,
	RunE: runWorkflow,
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	input := researchInputFromFlags(cmd)
	opts := emailOptionsFromFlags(cmd)

	return withApp(func(a *app) error {
		fmt.Fprintf(os.Stderr, "Running workflow for %s...\n", input.CompanyName)
		res, err := a.svc.Workflow(cmd.Context(), input, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Research saved to %s\n", filepath.Join(a.cfg.OutputDir, res.ResearchFile))
		fmt.Printf("Account brief saved to %s\n", filepath.Join(a.cfg.OutputDir, res.BriefFile))
		return reportEmails(cmd, a, res.Sequences, res.CSVFile)
	})
}

func init() {
	addResearchFlags(workflowCmd)
	addEmailFlags(workflowCmd)

	rootCmd.AddCommand(workflowCmd)
}
