// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/outreach-engine/internal/brief"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

var emailsCmd = &cobra.Command{
	Use:   "emails <brief-file>",
	Short: "Generate persona-driven email sequences from an account brief",
	Long: `Emails parses the account brief, generates up to five emails per priority
contact (pain point, case study, objection handling, value add, relationship),
and exports them to <output_dir>/<company>_emails_<timestamp>.csv.

Flags left unset take the email.* configuration defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmails,
}

func runEmails(cmd *cobra.Command, args []string) error {
	ab, err := brief.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("reading brief %s: %w", args[0], err)
	}
	opts := emailOptionsFromFlags(cmd)

	return withApp(func(a *app) error {
		fmt.Fprintln(os.Stderr, "Generating personalized email sequences...")
		res, err := a.svc.Emails(cmd.Context(), &ab, opts)
		if err != nil {
			return err
		}
		return reportEmails(cmd, a, res.Sequences, res.File)
	})
}

func reportEmails(cmd *cobra.Command, a *app, seqs []types.EmailSequence, file string) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(seqs); err != nil {
			return err
		}
	} else {
		for _, seq := range seqs {
			fmt.Printf("%-30s  %-32s  %d emails\n", seq.Contact.Name, seq.Contact.Persona.Label(), len(seq.Emails))
		}
	}
	fmt.Fprintf(os.Stderr, "Exported to CSV: %s\n", filepath.Join(a.cfg.OutputDir, file))
	return nil
}

// emailOptionsFromFlags returns only the options the user set explicitly.
func emailOptionsFromFlags(cmd *cobra.Command) *pipeline.EmailOptions {
	var opts pipeline.EmailOptions
	if cmd.Flags().Changed("subjects") {
		v, _ := cmd.Flags().GetBool("subjects")
		opts.IncludeSubjects = &v
	}
	if cmd.Flags().Changed("max") {
		v, _ := cmd.Flags().GetInt("max")
		opts.MaxEmailsPerContact = &v
	}
	if cmd.Flags().Changed("personalize") {
		v, _ := cmd.Flags().GetBool("personalize")
		opts.Personalize = &v
	}
	return &opts
}

func addEmailFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("subjects", true, "include subject lines (--subjects=false to omit)")
	cmd.Flags().Int("max", types.MaxEmailsPerContact, "maximum emails per contact (1-5)")
	cmd.Flags().Bool("personalize", true, "include personalized clauses")
	cmd.Flags().Bool("json", false, "print the generated sequences as JSON")
}

func init() {
	addEmailFlags(emailsCmd)

	rootCmd.AddCommand(emailsCmd)
}
