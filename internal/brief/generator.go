// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brief

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Generator turns a research document into a markdown account brief whose
// sections Parse understands.
type Generator interface {
	Generate(ctx context.Context, companyName, research string) (string, error)
}

// New returns the generator selected by cfg.Generator.
func New(cfg types.BriefConfig) (Generator, error) {
	switch cfg.Generator {
	case "", types.GeneratorTemplate:
		return TemplateGenerator{}, nil
	case types.GeneratorClaude:
		return NewClaudeGenerator(cfg)
	case types.GeneratorGemini:
		return NewGeminiGenerator(cfg)
	default:
		return nil, fmt.Errorf("unknown brief generator %q (want template, claude, or gemini)", cfg.Generator)
	}
}

// defaultSources are listed in every template brief ahead of the research URLs.
var defaultSources = []string{
	"Company website",
	"LinkedIn profiles",
	"Recent press releases",
	"Industry analysis reports",
}

// maxResearchSources bounds the URLs copied from research into SOURCES.
const maxResearchSources = 10

var sourceURL = regexp.MustCompile(`(?m)^https?://\S+$`)

var templateBriefTmpl = template.Must(template.New("brief").Parse(`# ACCOUNT INTELLIGENCE BRIEF

## COMPANY NAME
{{.CompanyName}}

## ACCOUNT SNAPSHOT
{{.CompanyName}} is a rapidly growing technology company that specializes in cloud-based solutions for enterprise customers. With approximately 500 employees and offices across North America and Europe, they are currently focused on expanding their presence in Asia and South America. The company has seen 35% year-over-year growth and is considering remote-first hiring policies to accelerate their global expansion.

## KEY STAKEHOLDERS
- Sarah Johnson, Chief People Officer (https://www.linkedin.com/in/sarahjohnson)
- Michael Chen, VP of Talent Acquisition (https://www.linkedin.com/in/michaelchen)
- David Rodriguez, CFO (https://www.linkedin.com/in/davidrodriguez)
- Amanda Kim, COO (https://www.linkedin.com/in/amandakim)
- Robert Patel, CEO (https://www.linkedin.com/in/robertpatel)

## GLOBAL FOOTPRINT & EXPANSION
Headquarters in San Francisco with offices in New York, London, and Berlin. Currently exploring expansion into Singapore, Tokyo, São Paulo, and Mexico City. Considering a remote-first approach to accelerate growth without establishing physical offices in each location.

## PAIN POINTS & CHALLENGES
- Managing compliance across multiple international jurisdictions
- Navigating complex local employment laws in target markets
- Inefficient contractor conversion process
- Inconsistent onboarding experience for international employees
- Lack of local HR expertise in expansion regions

## TRIGGER EVENTS
- Recently announced plans to double headcount within 18 months
- Opened a small satellite office in Singapore as APAC headquarters
- Hired a new Global VP of People last quarter
- Experienced compliance issues with contractors in Brazil

## PRIORITY CONTACTS
- Sarah Johnson, Chief People Officer [HR]
- Michael Chen, VP of Talent Acquisition [TALENT]
- David Rodriguez, CFO [FINANCE]
- Amanda Kim, COO [OPERATIONS]
- Robert Patel, CEO [EXECUTIVE]

## COMPETITIVE INTELLIGENCE
Currently using a mix of local legal entities, PEOs in some regions, and independent contractors. Considering consolidating their approach for more consistent global operations.

## RECOMMENDED OUTREACH ANGLES
- Simplified global expansion without entity setup
- Contractor misclassification risk mitigation
- Competitive benefits packages to attract international talent

## SUGGESTED CASE STUDY
TechDynamics - A similar SaaS company that used Remote.com to expand into 12 new countries in 9 months without setting up entities.

## REMOTE.COM SOLUTION FOCUS
Global Employment Platform with particular emphasis on entity-free expansion and contractor conversion capabilities.

## SOURCES
{{- range .Sources}}
- {{.}}
{{- end}}
`))

// TemplateGenerator fills a fixed demonstration brief with the company name
// and the source URLs found in the research. It makes no network calls.
type TemplateGenerator struct{}

// Generate renders the template brief.
func (TemplateGenerator) Generate(_ context.Context, companyName, research string) (string, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		companyName = researchCompany(research)
	}
	if companyName == "" {
		companyName = types.UnknownCompany
	}

	data := struct {
		CompanyName string
		Sources     []string
	}{
		CompanyName: companyName,
		Sources:     append(append([]string{}, defaultSources...), researchURLs(research)...),
	}

	var buf bytes.Buffer
	if err := templateBriefTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering brief template: %w", err)
	}
	return buf.String(), nil
}

// researchURLs returns the distinct source URLs in a research document, in
// order of first appearance.
func researchURLs(research string) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range sourceURL.FindAllString(research, -1) {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
		if len(out) == maxResearchSources {
			break
		}
	}
	return out
}

var researchCompanyLine = regexp.MustCompile(`(?m)^- Company Name:\s*(.+)$`)

// researchCompany recovers the company name from a research metadata footer.
func researchCompany(research string) string {
	if m := researchCompanyLine.FindStringSubmatch(research); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

var promptTmpl = template.Must(template.New("prompt").Parse(`You are a B2B sales research analyst preparing an account intelligence brief for Remote.com, a global employment platform (employer of record, contractor management, global payroll).

Using only the research below, write a brief about {{.CompanyName}} in Markdown with exactly these sections, in this order, each introduced by a "## " header on its own line:

## COMPANY NAME
## ACCOUNT SNAPSHOT
## KEY STAKEHOLDERS
## GLOBAL FOOTPRINT & EXPANSION
## PAIN POINTS & CHALLENGES
## TRIGGER EVENTS
## PRIORITY CONTACTS
## COMPETITIVE INTELLIGENCE
## RECOMMENDED OUTREACH ANGLES
## SUGGESTED CASE STUDY
## REMOTE.COM SOLUTION FOCUS
## SOURCES

Formatting rules:
- COMPANY NAME is a single line containing only the company name.
- Free-text sections are one paragraph with no blank lines inside.
- KEY STAKEHOLDERS, PAIN POINTS & CHALLENGES, TRIGGER EVENTS, PRIORITY CONTACTS, RECOMMENDED OUTREACH ANGLES, and SOURCES are bulleted lists with one "- " item per line and no blank lines between items.
- KEY STAKEHOLDERS items read "Name, Title (https://www.linkedin.com/in/...)" when a LinkedIn URL is known, otherwise "Name, Title".
- PRIORITY CONTACTS lists 3 to 5 people as "Name, Title [TAG]" where TAG is one of HR, TALENT, FINANCE, OPERATIONS, EXECUTIVE.
- RECOMMENDED OUTREACH ANGLES has exactly 3 items.
- Do not invent people or facts that are not supported by the research. Write "Unknown" for a free-text section with no supporting evidence.
- Respond with the brief only, without code fences or commentary.

Research:
{{.Research}}
`))

// renderPrompt executes the brief prompt template.
func renderPrompt(companyName, research string) (string, error) {
	var buf bytes.Buffer
	data := struct{ CompanyName, Research string }{companyName, research}
	if err := promptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var fence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\n(.*?)\\n?```$")

// stripFences removes a single wrapping Markdown code fence from model output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
