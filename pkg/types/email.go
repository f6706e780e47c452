// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EmailType identifies one of the five emails in a sequence.
type EmailType string

const (
	EmailPainPoint         EmailType = "PAIN_POINT"
	EmailCaseStudy         EmailType = "CASE_STUDY"
	EmailObjectionHandling EmailType = "OBJECTION_HANDLING"
	EmailValueAdd          EmailType = "VALUE_ADD"
	EmailRelationship      EmailType = "RELATIONSHIP"
)

// EmailOrder is the fixed generation order. A sequence of N emails holds the
// first N entries.
var EmailOrder = []EmailType{
	EmailPainPoint,
	EmailCaseStudy,
	EmailObjectionHandling,
	EmailValueAdd,
	EmailRelationship,
}

var emailLabels = map[EmailType]string{
	EmailPainPoint:         "PAIN_POINT_INTRODUCTION",
	EmailCaseStudy:         "CASE_STUDY_SOCIAL_PROOF",
	EmailObjectionHandling: "OBJECTION_HANDLING",
	EmailValueAdd:          "VALUE_ADD_CONTENT",
	EmailRelationship:      "RELATIONSHIP_CONTINUATION",
}

// Label returns the long email type name written to CSV exports.
func (t EmailType) Label() string {
	if l, ok := emailLabels[t]; ok {
		return l
	}
	return string(t)
}

// Email is a single generated outreach email.
type Email struct {
	// Subject is empty when subjects are disabled.
	Subject string    `json:"subject" yaml:"subject"`
	Body    string    `json:"body" yaml:"body"`
	Type    EmailType `json:"type" yaml:"type"`
}

// EmailSequence holds the emails generated for one contact, in EmailOrder.
type EmailSequence struct {
	Contact Contact `json:"contact" yaml:"contact"`
	Emails  []Email `json:"emails" yaml:"emails"`
}

// MaxEmailsPerContact is the number of email types in EmailOrder.
const MaxEmailsPerContact = 5

// EmailGenerationOptions controls how many emails are generated per contact
// and whether subjects and personalized clauses are included.
type EmailGenerationOptions struct {
	IncludeSubjects     bool `json:"includeSubjects" yaml:"include_subjects" mapstructure:"include_subjects"`
	MaxEmailsPerContact int  `json:"maxEmailsPerContact" yaml:"max_emails_per_contact" mapstructure:"max_emails_per_contact"`
	Personalize         bool `json:"personalize" yaml:"personalize" mapstructure:"personalize"`
}

// DefaultEmailOptions returns subjects on, five emails, personalization on.
func DefaultEmailOptions() EmailGenerationOptions {
	return EmailGenerationOptions{
		IncludeSubjects:     true,
		MaxEmailsPerContact: MaxEmailsPerContact,
		Personalize:         true,
	}
}

// EmailCount returns MaxEmailsPerContact clamped to [1, 5].
func (o EmailGenerationOptions) EmailCount() int {
	switch {
	case o.MaxEmailsPerContact < 1:
		return 1
	case o.MaxEmailsPerContact > MaxEmailsPerContact:
		return MaxEmailsPerContact
	default:
		return o.MaxEmailsPerContact
	}
}

// PersonaAttributes is the static messaging profile for one persona.
type PersonaAttributes struct {
	Type               PersonaType `json:"type" yaml:"type"`
	Motivations        []string    `json:"motivations" yaml:"motivations"`
	PainPoints         []string    `json:"painPoints" yaml:"pain_points"`
	ValueProps         []string    `json:"valueProps" yaml:"value_props"`
	CommunicationStyle string      `json:"communicationStyle" yaml:"communication_style"`
}
