// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package persona holds the static messaging profile for each buyer persona
// and the title heuristics that assign a contact to one.
package persona

import (
	"regexp"
	"strings"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

// Framework maps every persona to its motivations, pain points, value
// propositions, and communication style.
var Framework = map[types.PersonaType]types.PersonaAttributes{
	types.PersonaHRPeopleOps: {
		Type: types.PersonaHRPeopleOps,
		Motivations: []string{
			"Create a positive employee experience",
			"Build and maintain strong company culture",
			"Manage HR operations efficiently",
			"Reduce administrative burden",
			"Ensure compliance across jurisdictions",
		},
		PainPoints: []string{
			"Managing global benefits and compensation",
			"Navigating complex international compliance",
			"Maintaining consistent employee experience globally",
			"Providing local HR expertise in multiple countries",
			"Administrative burden of managing contractors vs employees",
		},
		ValueProps: []string{
			"Simplified global HR operations with local expertise",
			"Compliance in 180+ countries managed for you",
			"Standardized onboarding experience for all employees",
			"Reduced HR admin through automated workflows",
			"Single platform for managing global workforce",
		},
		CommunicationStyle: "Emphasize people-first approach, focus on employee experience and culture building. " +
			"Use empathetic language that highlights compliance expertise while emphasizing administrative burden reduction.",
	},
	types.PersonaTalentAcquisition: {
		Type: types.PersonaTalentAcquisition,
		Motivations: []string{
			"Expand talent pool globally",
			"Reduce time-to-hire metrics",
			"Improve candidate experience",
			"Build competitive hiring processes",
			"Eliminate geographical hiring limitations",
		},
		PainPoints: []string{
			"Limited by location-based hiring",
			"Complex international hiring processes",
			"Risk of misclassification with global contractors",
			"Inability to offer competitive benefits globally",
			"Losing candidates due to legal/visa constraints",
		},
		ValueProps: []string{
			"Ability to hire anyone, anywhere within days",
			"Compliant employment in 180+ countries",
			"Competitive benefits packages in every location",
			"Streamlined global onboarding process",
			"Simplified contractor to employee conversion",
		},
		CommunicationStyle: "Focus on speed and talent acquisition advantages. " +
			"Use direct language about expanding talent pools and removing geographical barriers. " +
			"Highlight competitive advantages in the war for talent.",
	},
	types.PersonaFinance: {
		Type: types.PersonaFinance,
		Motivations: []string{
			"Control and predict global employment costs",
			"Reduce compliance risks and penalties",
			"Streamline international payroll processes",
			"Optimize tax strategies across jurisdictions",
			"Improve cost efficiency of global operations",
		},
		PainPoints: []string{
			"Unpredictable costs of international expansion",
			"Managing multiple local payroll providers",
			"Currency exchange risks and banking complexity",
			"Tax compliance across multiple jurisdictions",
			"Inefficiencies from fragmented systems",
		},
		ValueProps: []string{
			"Transparent, predictable global employment costs",
			"Consolidated invoicing in your preferred currency",
			"Reduced compliance risk and penalties",
			"Simplified global payroll management",
			"Cost-effective international entity management",
		},
		CommunicationStyle: "Lead with data, numbers and ROI. " +
			"Use precise language around compliance, risk mitigation, and cost predictability. " +
			"Focus on demonstrable business outcomes and efficiency metrics.",
	},
	types.PersonaOperations: {
		Type: types.PersonaOperations,
		Motivations: []string{
			"Streamline international operations",
			"Reduce operational complexity",
			"Standardize processes globally",
			"Scale operations efficiently",
			"Improve workforce flexibility",
		},
		PainPoints: []string{
			"Managing multiple international vendors",
			"Inconsistent processes across countries",
			"Lack of visibility into global operations",
			"Slow expansion into new markets",
			"Difficulty scaling workforce up/down efficiently",
		},
		ValueProps: []string{
			"Single platform for global workforce management",
			"Standardized processes with local compliance",
			"Rapid market entry without entity setup",
			"Simplified vendor consolidation",
			"Flexible workforce scaling capabilities",
		},
		CommunicationStyle: "Focus on efficiency, standardization and scalability. " +
			"Use practical language about processes and systems. " +
			"Highlight operational improvements and reduction of complexity.",
	},
	types.PersonaExecutive: {
		Type: types.PersonaExecutive,
		Motivations: []string{
			"Execute global growth strategy",
			"Reduce organizational risk",
			"Drive competitive advantage",
			"Improve operational efficiency",
			"Access global talent pools",
		},
		PainPoints: []string{
			"Barriers to international expansion",
			"Compliance risks in global operations",
			"Limited access to global talent",
			"Inefficient global workforce management",
			"Speed of market entry challenges",
		},
		ValueProps: []string{
			"Accelerated global growth capabilities",
			"Reduced risks of international operations",
			"Competitive advantage through global talent access",
			"Strategic workforce deployment globally",
			"Speed and agility in market expansion",
		},
		CommunicationStyle: "Strategic and high-level with focus on business outcomes. " +
			"Emphasize competitive advantage, market opportunity, and strategic capabilities. " +
			"Use executive-level language that connects to business objectives.",
	},
}

// Attributes returns the profile for p. Unknown personas get the executive
// profile.
func Attributes(p types.PersonaType) types.PersonaAttributes {
	if a, ok := Framework[p]; ok {
		return a
	}
	return Framework[types.PersonaExecutive]
}

type keywordRule struct {
	persona types.PersonaType
	re      *regexp.Regexp
}

// titleRules are evaluated in order; the first match wins. "Chief People
// Officer" must land on HR, so the HR rule precedes the executive rule.
var titleRules = []keywordRule{
	{types.PersonaHRPeopleOps, regexp.MustCompile(`(?i)HR|People|Talent|Culture`)},
	{types.PersonaTalentAcquisition, regexp.MustCompile(`(?i)Recruit|Talent Acquisition|TA`)},
	{types.PersonaFinance, regexp.MustCompile(`(?i)Finance|CFO|Account|Payroll`)},
	{types.PersonaOperations, regexp.MustCompile(`(?i)Operations|COO|Process`)},
	{types.PersonaExecutive, regexp.MustCompile(`(?i)CEO|CTO|CIO|Chief|President|Founder|Owner`)},
}

var tagPattern = regexp.MustCompile(`(?i)\[(HR|TALENT|FINANCE|OPERATIONS|EXECUTIVE)\]`)

var tagPersonas = map[string]types.PersonaType{
	"HR":         types.PersonaHRPeopleOps,
	"TALENT":     types.PersonaTalentAcquisition,
	"FINANCE":    types.PersonaFinance,
	"OPERATIONS": types.PersonaOperations,
	"EXECUTIVE":  types.PersonaExecutive,
}

// Classify assigns a persona from a contact title using keyword matching.
// entry is the full source line; an explicit [HR], [TALENT], [FINANCE],
// [OPERATIONS], or [EXECUTIVE] tag anywhere in it overrides the keywords.
// Titles matching nothing are EXECUTIVE.
func Classify(title, entry string) types.PersonaType {
	if p, ok := Tag(entry); ok {
		return p
	}
	for _, r := range titleRules {
		if r.re.MatchString(title) {
			return r.persona
		}
	}
	return types.PersonaExecutive
}

// Tag returns the persona named by the first bracketed tag in s.
func Tag(s string) (types.PersonaType, bool) {
	m := tagPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	p, ok := tagPersonas[strings.ToUpper(m[1])]
	return p, ok
}

// StripTags removes bracketed persona tags from s.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

