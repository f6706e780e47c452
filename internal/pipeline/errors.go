// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "errors"

// ErrValidation matches every ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ErrArchiveDisabled is returned by History when no archive is configured.
var ErrArchiveDisabled = errors.New("run archive is disabled (set archive.enabled)")

// ValidationError reports a missing or malformed request field. Front ends
// surface it as a client error rather than a server failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func required(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Validation messages, one per required field.
const (
	MsgCompanyRequired      = "Company name is required"
	MsgResearchRequired     = "Research data is required"
	MsgBriefRequired        = "Brief text is required"
	MsgAccountBriefRequired = "Account brief is required"
)
