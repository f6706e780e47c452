// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package persona

import "github.com/pdiddy/outreach-engine/pkg/types"

// Objection is one numbered rebuttal in the objection-handling email.
type Objection struct {
	Topic    string
	Response string
}

// Resource is the persona-specific asset offered in the value-add email.
type Resource struct {
	Title string

	// Lead joins the title to the bullet list, e.g. "includes" or "covers".
	Lead    string
	Bullets []string
}

// Objections holds three rebuttals per persona.
var Objections = map[types.PersonaType][]Objection{
	types.PersonaHRPeopleOps: {
		{"Employee Experience", "Remote.com creates a consistent, high-quality experience for all employees regardless of location"},
		{"Implementation Complexity", "Our dedicated implementation team ensures a smooth transition with minimal disruption"},
		{"Local HR Expertise", "We have local experts in 180+ countries who understand the nuances of each market"},
	},
	types.PersonaTalentAcquisition: {
		{"Speed of Hiring", "Remote.com reduces time-to-hire from months to days in new countries"},
		{"Candidate Experience", "Our streamlined onboarding creates a professional impression for new hires"},
		{"Competitive Offerings", "We provide locally competitive benefits in every country"},
	},
	types.PersonaFinance: {
		{"Cost Predictability", "Our transparent pricing model eliminates unexpected costs and hidden fees"},
		{"Compliance Risk", "Our local legal experts ensure 100% compliance in every jurisdiction"},
		{"ROI Justification", "Customers typically see 30-40% cost reduction compared to establishing entities"},
	},
	types.PersonaOperations: {
		{"System Integration", "Remote.com integrates with your existing HR, payroll, and finance systems"},
		{"Process Standardization", "Our platform enables consistent processes while maintaining local compliance"},
		{"Operational Control", "You maintain full visibility and control through our comprehensive dashboard"},
	},
	types.PersonaExecutive: {
		{"Strategic Focus", "Remote.com handles the complexity so your team can focus on growth priorities"},
		{"Market Speed", "Enter new markets in days rather than months with our established infrastructure"},
		{"Competitive Advantage", "Access global talent without geographical limitations"},
	},
}

// Resources holds the value-add asset per persona.
var Resources = map[types.PersonaType]Resource{
	types.PersonaHRPeopleOps: {
		Title: "Global HR Compliance Handbook",
		Lead:  "covers essential insights on",
		Bullets: []string{
			"Employment laws in 180+ countries",
			"Best practices for global employee experience",
			"Automation strategies for HR administrative tasks",
		},
	},
	types.PersonaTalentAcquisition: {
		Title: "Global Talent Acquisition Playbook",
		Lead:  "includes",
		Bullets: []string{
			"Strategies for expanding talent pools beyond borders",
			"Streamlined international hiring workflows",
			"Competitive benefits benchmarks for key markets",
		},
	},
	types.PersonaFinance: {
		Title: "Global Employment Cost Analysis Tool",
		Lead:  "provides",
		Bullets: []string{
			"Detailed cost breakdowns for international hiring",
			"Tax optimization strategies for global workforces",
			"ROI calculator for entity establishment vs. EOR",
		},
	},
	types.PersonaOperations: {
		Title: "Global Operations Standardization Guide",
		Lead:  "covers",
		Bullets: []string{
			"Frameworks for consistent global processes",
			"System integration best practices",
			"Operational KPIs for international teams",
		},
	},
	types.PersonaExecutive: {
		Title: "Executive Guide to Global Growth Strategy",
		Lead:  "includes",
		Bullets: []string{
			"Market entry strategies and timelines",
			"Risk assessment frameworks for international expansion",
			"Case studies from high-growth companies",
		},
	},
}

// ObjectionsFor returns the rebuttals for p, falling back to the executive set.
func ObjectionsFor(p types.PersonaType) []Objection {
	if o, ok := Objections[p]; ok {
		return o
	}
	return Objections[types.PersonaExecutive]
}

// ResourceFor returns the value-add asset for p, falling back to the
// executive resource.
func ResourceFor(p types.PersonaType) Resource {
	if r, ok := Resources[p]; ok {
		return r
	}
	return Resources[types.PersonaExecutive]
}
