// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes pipeline artifacts (research, briefs, parsed brief
// dumps, and email CSVs) into the output directory.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Header is the first row of every email CSV.
var Header = []string{
	"Contact Name",
	"Contact Title",
	"Contact Email",
	"Persona",
	"Email Number",
	"Email Type",
	"Subject",
	"Body",
}

// Format selects the parsed-brief dump encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Sanitize replaces every non-alphanumeric character with an underscore.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// Timestamp renders t as an ISO-8601 UTC instant with millisecond precision,
// with colons and periods replaced by dashes (2026-03-15T10-30-00-000Z).
func Timestamp(t time.Time) string {
	s := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return strings.NewReplacer(":", "-", ".", "-").Replace(s)
}

// Exporter writes files into Dir.
type Exporter struct {
	Dir string
	Now func() time.Time
}

// New returns an Exporter for dir using the wall clock.
func New(dir string) *Exporter {
	return &Exporter{Dir: dir, Now: time.Now}
}

// Prepare creates the output directory.
func (e *Exporter) Prepare() error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Exporter) write(name string, data []byte) (string, error) {
	if err := e.Prepare(); err != nil {
		return "", err
	}
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

// ResearchName is the research document file name for company.
func ResearchName(company string) string { return Sanitize(company) + "_research.md" }

// BriefName is the brief file name for company.
func BriefName(company string) string { return Sanitize(company) + "_brief.md" }

// WriteResearch writes <company>_research.md and returns its path.
func (e *Exporter) WriteResearch(company, research string) (string, error) {
	return e.write(ResearchName(company), []byte(research))
}

// WriteBrief writes <company>_brief.md and returns its path.
func (e *Exporter) WriteBrief(company, brief string) (string, error) {
	return e.write(BriefName(company), []byte(brief))
}

// WriteParsed dumps a parsed brief as <base>.json or <base>.yaml. base is
// sanitized; callers pass the company name or the source file's basename.
func (e *Exporter) WriteParsed(base string, b types.AccountBrief, format Format) (string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(b)
	case FormatJSON, "":
		format = FormatJSON
		data, err = json.MarshalIndent(b, "", "  ")
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling brief: %w", err)
	}
	return e.write(Sanitize(base)+"."+string(format), data)
}

// Rows flattens sequences into CSV records, one per email, without the header.
func Rows(sequences []types.EmailSequence) [][]string {
	var rows [][]string
	for _, seq := range sequences {
		for i, email := range seq.Emails {
			rows = append(rows, []string{
				seq.Contact.Name,
				seq.Contact.Title,
				seq.Contact.Email,
				seq.Contact.Persona.Label(),
				strconv.Itoa(i + 1),
				email.Type.Label(),
				email.Subject,
				email.Body,
			})
		}
	}
	return rows
}

// EmailsName is the timestamped CSV file name for company.
func EmailsName(company string, t time.Time) string {
	return fmt.Sprintf("%s_emails_%s.csv", Sanitize(company), Timestamp(t))
}

// WriteEmails writes <company>_emails_<timestamp>.csv with a header row and
// one row per email, and returns its path.
func (e *Exporter) WriteEmails(sequences []types.EmailSequence, company string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}
	if err := w.WriteAll(Rows(sequences)); err != nil {
		return "", fmt.Errorf("writing CSV rows: %w", err)
	}
	return e.write(EmailsName(company, e.now()), []byte(sb.String()))
}
