// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interactive implements the menu-driven terminal front end.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/outreach-engine/internal/brief"
	"github.com/pdiddy/outreach-engine/internal/export"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Menu entries in display order.
var menu = []string{
	"Generate Email Sequences (Full Workflow)",
	"Research a Company",
	"Parse an Existing Account Brief",
	"Generate Emails from Existing Brief",
	"Exit",
}

const (
	choiceWorkflow = iota
	choiceResearch
	choiceParse
	choiceEmails
	choiceExit
)

// Driver runs the interactive menu loop against a pipeline Service.
type Driver struct {
	svc       *pipeline.Service
	prompt    Prompter
	out       io.Writer
	outputDir string
}

// New returns a Driver. Progress and results are written to out; outputDir
// is used to print full artifact paths.
func New(svc *pipeline.Service, p Prompter, out io.Writer, outputDir string) *Driver {
	if p == nil {
		p = TermPrompter{}
	}
	return &Driver{svc: svc, prompt: p, out: out, outputDir: outputDir}
}

// Run shows the menu until the user exits or input ends. Action failures
// are reported and the menu is shown again.
func (d *Driver) Run(ctx context.Context) error {
	d.welcome()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := d.prompt.Select("MAIN MENU", menu)
		if errors.Is(err, ErrQuit) {
			d.goodbye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		switch choice {
		case choiceWorkflow:
			err = d.workflow(ctx)
		case choiceResearch:
			err = d.research(ctx)
		case choiceParse:
			err = d.parse(ctx)
		case choiceEmails:
			err = d.emails(ctx)
		case choiceExit:
			d.goodbye()
			return nil
		default:
			fmt.Fprintln(d.out, yellow("Invalid option. Please try again."))
			continue
		}

		if errors.Is(err, ErrQuit) {
			d.goodbye()
			return nil
		}
		if err != nil {
			fmt.Fprintf(d.out, "%s %s\n\n", red("An error occurred:"), err.Error())
		}
	}
}

func (d *Driver) welcome() {
	rule := strings.Repeat("=", 52)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, cyan(rule))
	fmt.Fprintln(d.out, bold("  REMOTE.COM EMAIL GENERATOR"))
	fmt.Fprintln(d.out, "  Personalized Outreach Automation")
	fmt.Fprintln(d.out, cyan(rule))
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "This tool helps you generate personalized email sequences")
	fmt.Fprintln(d.out, "for Remote.com outreach based on account research.")
	fmt.Fprintln(d.out)
}

func (d *Driver) goodbye() {
	fmt.Fprintln(d.out, "\nThank you for using Remote.com Email Generator!")
}

func (d *Driver) path(file string) string {
	return filepath.Join(d.outputDir, file)
}

func (d *Driver) researchInput() (types.ResearchInput, error) {
	var in types.ResearchInput
	var err error
	if in.CompanyName, err = d.prompt.Input("Enter company name", notEmpty); err != nil {
		return in, err
	}
	if in.Website, err = d.prompt.Input("Enter company website (optional)", nil); err != nil {
		return in, err
	}
	in.LinkedInURL, err = d.prompt.Input("Enter LinkedIn URL (optional)", nil)
	return in, err
}

// briefPath prompts until the path names an existing file.
func (d *Driver) briefPath() (string, error) {
	for {
		p, err := d.prompt.Input("Enter path to account brief file", notEmpty)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		fmt.Fprintln(d.out, yellow("File not found. Please check the path and try again."))
	}
}

func (d *Driver) workflow(ctx context.Context) error {
	in, err := d.researchInput()
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, cyan("\nRunning research, brief, and email generation..."))
	res, err := d.svc.Workflow(ctx, in, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Research saved to %s\n", d.path(res.ResearchFile))
	fmt.Fprintf(d.out, "Account brief saved to %s\n", d.path(res.BriefFile))
	fmt.Fprintln(d.out, green("Email sequences generated successfully!"))
	fmt.Fprintf(d.out, "Exported to CSV: %s\n\n", d.path(res.CSVFile))
	return nil
}

func (d *Driver) research(ctx context.Context) error {
	in, err := d.researchInput()
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, cyan("\nConducting research..."))
	res, err := d.svc.Research(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "%s Saved to %s\n\n", green("Research complete!"), d.path(res.File))
	return nil
}

func (d *Driver) parse(ctx context.Context) error {
	p, err := d.briefPath()
	if err != nil {
		return err
	}
	res, err := d.svc.ParseFile(ctx, p, export.FormatJSON)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, bold("\nParsed Account Brief:"))
	fmt.Fprintf(d.out, "Company: %s\n", res.Brief.CompanyName)
	fmt.Fprintf(d.out, "Contacts: %d\n", len(res.Brief.PriorityContacts))
	fmt.Fprintf(d.out, "Pain Points: %d\n", len(res.Brief.PainPoints))
	fmt.Fprintf(d.out, "\nParsed brief saved to %s\n\n", d.path(res.File))
	return nil
}

func (d *Driver) emails(ctx context.Context) error {
	p, err := d.briefPath()
	if err != nil {
		return err
	}
	ab, err := brief.ParseFile(p)
	if err != nil {
		return err
	}

	var opts pipeline.EmailOptions
	subjects, err := d.prompt.Confirm("Include subject lines")
	if err != nil {
		return err
	}
	opts.IncludeSubjects = &subjects

	count, err := d.prompt.Input("Maximum emails per contact (1-5)", emailCount)
	if err != nil {
		return err
	}
	if n, convErr := strconv.Atoi(count); convErr == nil {
		opts.MaxEmailsPerContact = &n
	}

	personalize, err := d.prompt.Confirm("Personalize emails")
	if err != nil {
		return err
	}
	opts.Personalize = &personalize

	fmt.Fprintln(d.out, cyan("\nGenerating personalized email sequences..."))
	res, err := d.svc.Emails(ctx, &ab, &opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, green("Email sequences generated successfully!"))
	fmt.Fprintf(d.out, "Exported to CSV: %s\n\n", d.path(res.File))
	return nil
}
