// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "nested", "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s, dir
}

var base = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *Store) {
	t.Helper()
	runs := []types.RunRecord{
		{Kind: types.RunResearch, Company: "Acme", StartedAt: base, Duration: 1500 * time.Millisecond, Files: []string{"Acme_research.md"}},
		{Kind: types.RunWorkflow, Company: "Acme", StartedAt: base.Add(time.Hour), Emails: 10,
			Files: []string{"Acme_research.md", "Acme_brief.md", "Acme_emails_x.csv"},
			Contacts: []types.RunContact{
				{Name: "Jane Doe", Title: "Chief People Officer", Persona: types.PersonaHRPeopleOps},
				{Name: "Max Roe", Title: "CEO", Persona: types.PersonaExecutive},
			}},
		{Kind: types.RunResearch, Company: "Globex", StartedAt: base.Add(2 * time.Hour), Status: types.RunFailed, Error: "search down"},
	}
	for _, r := range runs {
		if _, err := s.Record(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	s, dir := testStore(t)
	if _, err := os.Stat(filepath.Join(dir, "nested", "runs.db")); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
	for _, table := range []string{"runs", "run_contacts"} {
		var n int
		if err := s.db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("table %s missing", table)
		}
	}
}

func TestRecordAssignsID(t *testing.T) {
	s, _ := testStore(t)
	id, err := s.Record(context.Background(), types.RunRecord{Kind: types.RunParse, Company: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}

	id2, err := s.Record(context.Background(), types.RunRecord{ID: "fixed", Kind: types.RunParse, Company: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if id2 != "fixed" {
		t.Errorf("id = %q, want fixed", id2)
	}

	if _, err := s.Record(context.Background(), types.RunRecord{ID: "fixed", Kind: types.RunParse}); err == nil {
		t.Error("expected duplicate ID to fail")
	}
}

func TestList(t *testing.T) {
	s, _ := testStore(t)
	seed(t, s)
	ctx := context.Background()

	runs, err := s.List(ctx, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Company != "Globex" || runs[2].Kind != types.RunResearch {
		t.Errorf("runs not newest first: %+v", runs)
	}
	if runs[0].Status != types.RunFailed || runs[0].Error != "search down" {
		t.Errorf("failed run = %+v", runs[0])
	}

	wf := runs[1]
	if wf.Kind != types.RunWorkflow || wf.Emails != 10 || len(wf.Files) != 3 {
		t.Errorf("workflow run = %+v", wf)
	}
	if len(wf.Contacts) != 2 || wf.Contacts[0].Name != "Jane Doe" || wf.Contacts[1].Persona != types.PersonaExecutive {
		t.Errorf("contacts = %+v", wf.Contacts)
	}
	if !wf.StartedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("started_at = %v", wf.StartedAt)
	}
	if runs[2].Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", runs[2].Duration)
	}
	if runs[2].Status != types.RunOK {
		t.Errorf("default status = %q", runs[2].Status)
	}
}

func TestListFilters(t *testing.T) {
	s, _ := testStore(t)
	seed(t, s)
	ctx := context.Background()

	tests := []struct {
		name string
		opts ListOptions
		want int
	}{
		{"company substring case-insensitive", ListOptions{Company: "acm"}, 2},
		{"kind", ListOptions{Kind: types.RunResearch}, 2},
		{"company and kind", ListOptions{Company: "Acme", Kind: types.RunWorkflow}, 1},
		{"failed only", ListOptions{FailedOnly: true}, 1},
		{"limit", ListOptions{Limit: 1}, 1},
		{"no match", ListOptions{Company: "Initech"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := s.List(ctx, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if len(runs) != tt.want {
				t.Errorf("got %d runs, want %d", len(runs), tt.want)
			}
		})
	}
}

func TestExportYAML(t *testing.T) {
	s, dir := testStore(t)
	seed(t, s)

	path := filepath.Join(dir, "runs.yaml")
	if err := s.ExportYAML(context.Background(), path, ListOptions{Company: "Acme"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var runs []types.RunRecord
	if err := yaml.Unmarshal(data, &runs); err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("exported %d runs, want 2", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	s, dir := testStore(t)
	seed(t, s)

	path := filepath.Join(dir, "runs.json")
	if err := s.ExportJSON(context.Background(), path, ListOptions{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var runs []types.RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("exported %d runs, want 3", len(runs))
	}
	if runs[1].Contacts[0].Persona != types.PersonaHRPeopleOps {
		t.Errorf("persona = %q", runs[1].Contacts[0].Persona)
	}
}
