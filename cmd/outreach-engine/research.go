// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research a company and save the findings as markdown",
	Long: `Research runs six web searches about the company (overview, leadership,
recent news, market position, global presence, challenges) concurrently and
writes the combined document to <output_dir>/<company>_research.md.

Requires an Exa API key (research.api_key, EXA_API_KEY, or
.secrets/exa-api-key).`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	input := researchInputFromFlags(cmd)
	return withApp(func(a *app) error {
		fmt.Fprintf(os.Stderr, "Researching %s...\n", input.CompanyName)
		res, err := a.svc.Research(cmd.Context(), input)
		if err != nil {
			return err
		}
		fmt.Printf("Research saved to %s\n", filepath.Join(a.cfg.OutputDir, res.File))
		if show, _ := cmd.Flags().GetBool("print"); show {
			fmt.Println()
			fmt.Print(res.Research)
		}
		return nil
	})
}

func researchInputFromFlags(cmd *cobra.Command) types.ResearchInput {
	company, _ := cmd.Flags().GetString("company")
	website, _ := cmd.Flags().GetString("website")
	linkedIn, _ := cmd.Flags().GetString("linkedin")
	return types.ResearchInput{CompanyName: company, Website: website, LinkedInURL: linkedIn}
}

func addResearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("company", "", "company name (required)")
	cmd.Flags().String("website", "", "company website, used to focus the overview search")
	cmd.Flags().String("linkedin", "", "company LinkedIn URL, recorded in the research metadata")
}

func init() {
	addResearchFlags(researchCmd)
	researchCmd.Flags().Bool("print", false, "also print the research document")

	rootCmd.AddCommand(researchCmd)
}
