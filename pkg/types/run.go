// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunKind names the pipeline operation a run record describes.
type RunKind string

const (
	RunResearch RunKind = "research"
	RunBrief    RunKind = "brief"
	RunParse    RunKind = "parse"
	RunEmails   RunKind = "emails"
	RunWorkflow RunKind = "workflow"
)

// RunStatus is the outcome of a run.
type RunStatus string

const (
	RunOK     RunStatus = "ok"
	RunFailed RunStatus = "error"
)

// RunContact summarizes one contact an emails or workflow run wrote to.
type RunContact struct {
	Name    string      `json:"name" yaml:"name"`
	Title   string      `json:"title" yaml:"title"`
	Persona PersonaType `json:"persona" yaml:"persona"`
}

// RunRecord is one entry in the run archive.
type RunRecord struct {
	ID        string        `json:"id" yaml:"id"`
	Kind      RunKind       `json:"kind" yaml:"kind"`
	Company   string        `json:"company" yaml:"company"`
	StartedAt time.Time     `json:"startedAt" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Status    RunStatus     `json:"status" yaml:"status"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`

	// Files lists the artifact file names written by the run.
	Files []string `json:"files" yaml:"files"`

	Emails   int          `json:"emails" yaml:"emails"`
	Contacts []RunContact `json:"contacts" yaml:"contacts"`
}
