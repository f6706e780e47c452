// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package brief turns research text into a markdown account brief and parses
// account briefs into structured AccountBrief records.
package brief

import (
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/outreach-engine/internal/persona"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Section headers in canonical document order.
const (
	SectionCompanyName             = "COMPANY NAME"
	SectionAccountSnapshot         = "ACCOUNT SNAPSHOT"
	SectionKeyStakeholders         = "KEY STAKEHOLDERS"
	SectionGlobalFootprint         = "GLOBAL FOOTPRINT & EXPANSION"
	SectionPainPoints              = "PAIN POINTS & CHALLENGES"
	SectionTriggerEvents           = "TRIGGER EVENTS"
	SectionPriorityContacts        = "PRIORITY CONTACTS"
	SectionCompetitiveIntelligence = "COMPETITIVE INTELLIGENCE"
	SectionOutreachAngles          = "RECOMMENDED OUTREACH ANGLES"
	SectionCaseStudy               = "SUGGESTED CASE STUDY"
	SectionSolutionFocus           = "REMOTE.COM SOLUTION FOCUS"
	SectionSources                 = "SOURCES"
)

// Sections lists the twelve recognized headers.
var Sections = []string{
	SectionCompanyName,
	SectionAccountSnapshot,
	SectionKeyStakeholders,
	SectionGlobalFootprint,
	SectionPainPoints,
	SectionTriggerEvents,
	SectionPriorityContacts,
	SectionCompetitiveIntelligence,
	SectionOutreachAngles,
	SectionCaseStudy,
	SectionSolutionFocus,
	SectionSources,
}

var (
	listItemSep    = regexp.MustCompile(`\n-\s*`)
	leadingDash    = regexp.MustCompile(`^-\s*`)
	nameTitle      = regexp.MustCompile(`^(.*?),\s*(.*?)(?:\s*\(|$)`)
	linkedInURL    = regexp.MustCompile(`\((https://www\.linkedin\.com/.*?)\)`)
	emailAddress   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	collapseSpaces = regexp.MustCompile(`\s{2,}`)
)

// Parse extracts an AccountBrief from markdown text. It never fails: missing
// sections yield empty values and a missing company name yields
// types.UnknownCompany.
func Parse(text string) types.AccountBrief {
	sec := Split(text)

	b := types.AccountBrief{
		CompanyName:               sec[SectionCompanyName],
		AccountSnapshot:           sec[SectionAccountSnapshot],
		KeyStakeholders:           parseStakeholders(sec[SectionKeyStakeholders]),
		GlobalFootprint:           sec[SectionGlobalFootprint],
		PainPoints:                SplitList(sec[SectionPainPoints]),
		TriggerEvents:             SplitList(sec[SectionTriggerEvents]),
		PriorityContacts:          parseContacts(sec[SectionPriorityContacts]),
		CompetitiveIntelligence:   sec[SectionCompetitiveIntelligence],
		RecommendedOutreachAngles: SplitList(sec[SectionOutreachAngles]),
		SuggestedCaseStudy:        sec[SectionCaseStudy],
		RemoteSolutionFocus:       sec[SectionSolutionFocus],
		Sources:                   SplitList(sec[SectionSources]),
	}
	b.Normalize()
	return b
}

// ParseFile reads and parses a brief from disk.
func ParseFile(path string) (types.AccountBrief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.AccountBrief{}, err
	}
	return Parse(string(data)), nil
}

// Split maps each recognized header to its trimmed body in a single pass.
//
// A header line is any line whose text ends with one of the twelve names,
// which covers "## COMPANY NAME" as well as bare "COMPANY NAME". Blank lines
// directly after a header are skipped. The body then runs until a blank
// line, a line starting with "##", or end of input. Lines inside a body are
// never treated as headers, so header text quoted in another section does
// not open a new one. When a header appears twice the first occurrence wins.
func Split(text string) map[string]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	out := make(map[string]string, len(Sections))

	for i := 0; i < len(lines); i++ {
		name, ok := headerName(lines[i])
		if !ok {
			continue
		}

		j := i + 1
		for j < len(lines) && isBlank(lines[j]) {
			j++
		}
		start := j
		for j < len(lines) && !isBlank(lines[j]) && !strings.HasPrefix(lines[j], "##") {
			j++
		}

		if _, seen := out[name]; !seen {
			out[name] = strings.TrimSpace(strings.Join(lines[start:j], "\n"))
		}
		// Resume on the terminating line so a "##" header is not skipped.
		i = j - 1
	}
	return out
}

func headerName(line string) (string, bool) {
	line = strings.TrimRight(line, " \t")
	for _, s := range Sections {
		if strings.HasSuffix(line, s) {
			return s, true
		}
	}
	return "", false
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// SplitList splits a list section into items on line-leading "-" markers.
// Each item is trimmed, a leading marker on the first item is removed, and
// empty items are dropped. The result is never nil.
func SplitList(body string) []string {
	items := []string{}
	if strings.TrimSpace(body) == "" {
		return items
	}
	for _, part := range listItemSep.Split(body, -1) {
		part = strings.TrimSpace(leadingDash.ReplaceAllString(strings.TrimSpace(part), ""))
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// splitNameTitle matches "Name, Title (optional parenthetical)". Items that
// lack the comma, or whose name or title is empty, are rejected.
func splitNameTitle(entry string) (name, title string, ok bool) {
	m := nameTitle.FindStringSubmatch(entry)
	if m == nil {
		return "", "", false
	}
	name = strings.TrimSpace(m[1])
	title = strings.TrimSpace(m[2])
	if name == "" || title == "" {
		return "", "", false
	}
	return name, title, true
}

func linkedIn(entry string) string {
	if m := linkedInURL.FindStringSubmatch(entry); m != nil {
		return m[1]
	}
	return ""
}

func parseStakeholders(body string) []types.Stakeholder {
	out := []types.Stakeholder{}
	for _, entry := range SplitList(body) {
		name, title, ok := splitNameTitle(entry)
		if !ok {
			continue
		}
		out = append(out, types.Stakeholder{
			Name:        name,
			Title:       title,
			LinkedInURL: linkedIn(entry),
			Notes:       entry,
		})
	}
	return out
}

func parseContacts(body string) []types.Contact {
	out := []types.Contact{}
	for _, entry := range SplitList(body) {
		name, title, ok := splitNameTitle(entry)
		if !ok {
			continue
		}
		// Classification sees the raw title; the stored title drops the tag.
		p := persona.Classify(title, entry)
		if clean := strings.TrimSpace(collapseSpaces.ReplaceAllString(persona.StripTags(title), " ")); clean != "" {
			title = clean
		}
		out = append(out, types.Contact{
			Name:        name,
			Title:       title,
			Email:       emailAddress.FindString(entry),
			LinkedInURL: linkedIn(entry),
			Persona:     p,
			Notes:       entry,
		})
	}
	return out
}
