// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "github.com/pdiddy/outreach-engine/pkg/types"

// EmailOptions is a partial EmailGenerationOptions as received from a
// request or flags. Nil fields take the configured default.
type EmailOptions struct {
	IncludeSubjects     *bool `json:"includeSubjects,omitempty"`
	MaxEmailsPerContact *int  `json:"maxEmailsPerContact,omitempty"`
	Personalize         *bool `json:"personalize,omitempty"`
}

// Resolve fills unset fields from defaults.
func (o *EmailOptions) Resolve(defaults types.EmailGenerationOptions) types.EmailGenerationOptions {
	out := defaults
	if o == nil {
		return out
	}
	if o.IncludeSubjects != nil {
		out.IncludeSubjects = *o.IncludeSubjects
	}
	if o.MaxEmailsPerContact != nil {
		out.MaxEmailsPerContact = *o.MaxEmailsPerContact
	}
	if o.Personalize != nil {
		out.Personalize = *o.Personalize
	}
	return out
}
