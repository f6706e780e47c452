// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the outreach-engine pipeline.
// Research input flows through the search aggregator into a markdown brief,
// the brief parser produces an AccountBrief, and the composer turns that into
// one EmailSequence per priority contact.
package types

import (
	"fmt"
	"strings"
)

// UnknownCompany is the company name used when a brief carries no
// COMPANY NAME section (or an empty one).
const UnknownCompany = "Unknown Company"

// PersonaType is one of the five buyer-role categories that select messaging
// tone and content.
type PersonaType string

const (
	PersonaHRPeopleOps       PersonaType = "HR_PEOPLE_OPS"
	PersonaTalentAcquisition PersonaType = "TALENT_ACQUISITION"
	PersonaFinance           PersonaType = "FINANCE"
	PersonaOperations        PersonaType = "OPERATIONS"
	PersonaExecutive         PersonaType = "EXECUTIVE"
)

// Personas lists every persona in declaration order.
var Personas = []PersonaType{
	PersonaHRPeopleOps,
	PersonaTalentAcquisition,
	PersonaFinance,
	PersonaOperations,
	PersonaExecutive,
}

var personaLabels = map[PersonaType]string{
	PersonaHRPeopleOps:       "HR & PEOPLE OPERATIONS LEADER",
	PersonaTalentAcquisition: "TALENT ACQUISITION LEADER",
	PersonaFinance:           "FINANCE LEADER",
	PersonaOperations:        "OPERATIONS LEADER",
	PersonaExecutive:         "EXECUTIVE LEADER",
}

// Label returns the human-readable persona name used in email copy and
// exports (e.g. "FINANCE LEADER"). Unknown values return the raw string.
func (p PersonaType) Label() string {
	if l, ok := personaLabels[p]; ok {
		return l
	}
	return string(p)
}

// Valid reports whether p is one of the five known personas.
func (p PersonaType) Valid() bool {
	_, ok := personaLabels[p]
	return ok
}

// ParsePersona accepts either the identifier ("FINANCE") or the long label
// ("FINANCE LEADER"), case-insensitively.
func ParsePersona(s string) (PersonaType, error) {
	s = strings.TrimSpace(s)
	for _, p := range Personas {
		if strings.EqualFold(s, string(p)) || strings.EqualFold(s, p.Label()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown persona %q", s)
}

// UnmarshalText lets JSON and YAML input use either persona spelling. An
// empty value is accepted and left for Normalize to default.
func (p *PersonaType) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*p = ""
		return nil
	}
	parsed, err := ParsePersona(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Stakeholder is one entry from the KEY STAKEHOLDERS section.
type Stakeholder struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	LinkedInURL string `json:"linkedInUrl,omitempty" yaml:"linkedin_url,omitempty"`

	// Notes is the raw source line the stakeholder was parsed from.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Contact is a priority contact: a stakeholder plus its classified persona.
type Contact struct {
	Name        string      `json:"name" yaml:"name"`
	Title       string      `json:"title" yaml:"title"`
	Email       string      `json:"email,omitempty" yaml:"email,omitempty"`
	LinkedInURL string      `json:"linkedInUrl,omitempty" yaml:"linkedin_url,omitempty"`
	Persona     PersonaType `json:"persona" yaml:"persona"`
	Notes       string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// FirstName returns the contact's name up to the first space, or "there"
// when the name is empty.
func (c Contact) FirstName() string {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "there"
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}

// AccountBrief is the structured form of an account intelligence brief.
// List fields are never nil after parsing; free-text fields default to "".
type AccountBrief struct {
	CompanyName               string        `json:"companyName" yaml:"company_name"`
	AccountSnapshot           string        `json:"accountSnapshot" yaml:"account_snapshot"`
	KeyStakeholders           []Stakeholder `json:"keyStakeholders" yaml:"key_stakeholders"`
	GlobalFootprint           string        `json:"globalFootprint" yaml:"global_footprint"`
	PainPoints                []string      `json:"painPoints" yaml:"pain_points"`
	TriggerEvents             []string      `json:"triggerEvents" yaml:"trigger_events"`
	PriorityContacts          []Contact     `json:"priorityContacts" yaml:"priority_contacts"`
	CompetitiveIntelligence   string        `json:"competitiveIntelligence" yaml:"competitive_intelligence"`
	RecommendedOutreachAngles []string      `json:"recommendedOutreachAngles" yaml:"recommended_outreach_angles"`
	SuggestedCaseStudy        string        `json:"suggestedCaseStudy" yaml:"suggested_case_study"`
	RemoteSolutionFocus       string        `json:"remoteSolutionFocus" yaml:"remote_solution_focus"`
	Sources                   []string      `json:"sources" yaml:"sources"`
}

// Normalize replaces nil list fields with empty slices and an empty company
// name with UnknownCompany. Briefs decoded from JSON go through this before
// composing so downstream code never sees absent lists.
func (b *AccountBrief) Normalize() {
	if strings.TrimSpace(b.CompanyName) == "" {
		b.CompanyName = UnknownCompany
	}
	if b.KeyStakeholders == nil {
		b.KeyStakeholders = []Stakeholder{}
	}
	if b.PainPoints == nil {
		b.PainPoints = []string{}
	}
	if b.TriggerEvents == nil {
		b.TriggerEvents = []string{}
	}
	if b.PriorityContacts == nil {
		b.PriorityContacts = []Contact{}
	}
	if b.RecommendedOutreachAngles == nil {
		b.RecommendedOutreachAngles = []string{}
	}
	if b.Sources == nil {
		b.Sources = []string{}
	}
	for i := range b.PriorityContacts {
		if !b.PriorityContacts[i].Persona.Valid() {
			b.PriorityContacts[i].Persona = PersonaExecutive
		}
	}
}
