// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

func (s *Service) start(kind types.RunKind, company string) *types.RunRecord {
	return &types.RunRecord{Kind: kind, Company: company, StartedAt: s.now()}
}

// write runs fn, appends the written file name to run, and returns it.
func (s *Service) write(run *types.RunRecord, fn func() (string, error)) (string, error) {
	path, err := fn()
	if err != nil {
		return "", err
	}
	name := filepath.Base(path)
	run.Files = append(run.Files, name)
	s.logger.Debug("wrote artifact", zap.String("kind", string(run.Kind)), zap.String("file", name))
	return name, nil
}

// finish records metrics and the archive entry. Validation failures never
// reach here. Archive errors are logged, not returned.
func (s *Service) finish(ctx context.Context, run *types.RunRecord, err error) {
	run.Duration = s.now().Sub(run.StartedAt)
	s.metrics.ObserveOperation(string(run.Kind), err)

	if err != nil {
		run.Status = types.RunFailed
		run.Error = err.Error()
		s.logger.Error("operation failed",
			zap.String("kind", string(run.Kind)),
			zap.String("company", run.Company),
			zap.Error(err))
	} else {
		run.Status = types.RunOK
	}

	if s.archive == nil {
		return
	}
	// Record even when the request context was cancelled.
	if _, aerr := s.archive.Record(context.WithoutCancel(ctx), *run); aerr != nil {
		s.logger.Warn("recording run failed", zap.String("kind", string(run.Kind)), zap.Error(aerr))
	}
}

func runContacts(contacts []types.Contact) []types.RunContact {
	out := make([]types.RunContact, len(contacts))
	for i, c := range contacts {
		out[i] = types.RunContact{Name: c.Name, Title: c.Title, Persona: c.Persona}
	}
	return out
}

func countEmails(seqs []types.EmailSequence) int {
	n := 0
	for _, s := range seqs {
		n += len(s.Emails)
	}
	return n
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
