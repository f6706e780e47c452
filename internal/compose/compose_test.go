// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

func fullBrief() types.AccountBrief {
	return types.AccountBrief{
		CompanyName:     "Acme",
		GlobalFootprint: "offices in 12 countries",
		PainPoints: []string{
			"Slow hiring in Europe",
			"Managing payroll vendors in every region",
		},
		TriggerEvents:             []string{"Series C Funding"},
		RecommendedOutreachAngles: []string{"Entity-free expansion"},
		SuggestedCaseStudy:        "TechDynamics",
		RemoteSolutionFocus:       "Global Employment Platform",
		PriorityContacts: []types.Contact{
			{Name: "Jane Doe", Title: "Chief People Officer", Persona: types.PersonaHRPeopleOps},
			{Name: "Tom Lee", Title: "Head of Recruiting", Persona: types.PersonaTalentAcquisition},
			{Name: "Ana Ruiz", Title: "CFO", Persona: types.PersonaFinance},
			{Name: "Sam Ito", Title: "COO", Persona: types.PersonaOperations},
			{Name: "Max Roe", Title: "CEO", Persona: types.PersonaExecutive},
		},
	}
}

func TestComposeCountInvariant(t *testing.T) {
	c := New(WithSeed(7))
	b := fullBrief()
	for m := 1; m <= 5; m++ {
		t.Run(fmt.Sprintf("M=%d", m), func(t *testing.T) {
			seqs := c.Compose(b, types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: m, Personalize: true})
			require.Len(t, seqs, len(b.PriorityContacts))
			for i, seq := range seqs {
				assert.Equal(t, b.PriorityContacts[i].Name, seq.Contact.Name)
				require.Len(t, seq.Emails, m)
				for j, e := range seq.Emails {
					assert.Equal(t, types.EmailOrder[j], e.Type)
					assert.NotEmpty(t, e.Subject)
					assert.True(t, strings.HasPrefix(e.Body, "Hi "+seq.Contact.FirstName()+",\n\n"))
					assert.True(t, strings.HasSuffix(e.Body, signature))
				}
			}
		})
	}
}

func TestComposeClampsEmailCount(t *testing.T) {
	c := New(WithSeed(1))
	b := fullBrief()
	tests := []struct{ max, want int }{{0, 1}, {-3, 1}, {6, 5}, {99, 5}}
	for _, tt := range tests {
		seqs := c.Compose(b, types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: tt.max})
		for _, seq := range seqs {
			assert.Len(t, seq.Emails, tt.want, "max=%d", tt.max)
		}
	}
}

func TestComposeSubjectSuppression(t *testing.T) {
	c := New(WithSeed(3))
	for _, personalize := range []bool{true, false} {
		seqs := c.Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: false, MaxEmailsPerContact: 5, Personalize: personalize})
		for _, seq := range seqs {
			for _, e := range seq.Emails {
				assert.Empty(t, e.Subject, "%s/%s", seq.Contact.Persona, e.Type)
				assert.NotEmpty(t, e.Body)
			}
		}
	}
}

func TestComposeEndToEnd(t *testing.T) {
	b := types.AccountBrief{
		CompanyName: "Acme",
		PriorityContacts: []types.Contact{
			{Name: "Jane Doe", Title: "Chief People Officer", Persona: types.PersonaHRPeopleOps},
		},
	}
	seqs := New().Compose(b, types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 2, Personalize: true})
	require.Len(t, seqs, 1)
	require.Len(t, seqs[0].Emails, 2)
	assert.Equal(t, types.EmailPainPoint, seqs[0].Emails[0].Type)
	assert.Equal(t, types.EmailCaseStudy, seqs[0].Emails[1].Type)
	for _, e := range seqs[0].Emails {
		assert.NotEmpty(t, e.Subject)
		assert.Contains(t, e.Body, "Jane,")
		assert.Contains(t, e.Body, "Acme")
	}
}

func TestComposeEmptyBrief(t *testing.T) {
	assert.Empty(t, New().Compose(types.AccountBrief{}, types.DefaultEmailOptions()))

	b := types.AccountBrief{PriorityContacts: []types.Contact{{Persona: "UNKNOWN"}}}
	seqs := New().Compose(b, types.DefaultEmailOptions())
	require.Len(t, seqs, 1)
	require.Len(t, seqs[0].Emails, 5)
	assert.True(t, strings.HasPrefix(seqs[0].Emails[0].Body, "Hi there,\n\n"))
	assert.Contains(t, seqs[0].Emails[0].Body, types.UnknownCompany)
	assert.Equal(t, "Next steps for Unknown Company and Remote.com", seqs[0].Emails[4].Subject)
	assert.Equal(t, types.PersonaExecutive, seqs[0].Contact.Persona)
	assert.Equal(t, types.PersonaType("UNKNOWN"), b.PriorityContacts[0].Persona, "caller's brief must not be modified")
}

func TestPainPointEmail(t *testing.T) {
	seqs := New().Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 1, Personalize: true})

	finance := seqs[2].Emails[0]
	assert.Equal(t, "Unpredictable challenges at Acme", finance.Subject)
	// "Managing" from the finance pain points matches the second brief pain point.
	assert.Contains(t, finance.Body, "I noticed Acme has been focusing on series c funding recently.")
	assert.Contains(t, finance.Body, "Many finance leader professionals I work with are facing challenges with managing payroll vendors in every region.")
	assert.Contains(t, finance.Body, "platform that transparent, predictable global employment costs.")
	assert.Contains(t, finance.Body, "Given your role as CFO, I thought you might be interested in how we could help streamline your global operations in offices in 12 countries.")
	assert.Contains(t, finance.Body, "Would you have 15 minutes to discuss how Remote.com could help Acme?")

	hr := seqs[0].Emails[0]
	assert.Equal(t, "Managing challenges at Acme", hr.Subject)
	assert.Contains(t, hr.Body, "Many hr & people operations leader professionals I work with")
}

func TestPainPointEmailGeneric(t *testing.T) {
	b := fullBrief()
	seqs := New().Compose(b, types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 1, Personalize: false})
	body := seqs[3].Emails[0].Body
	assert.Contains(t, body, "I hope this email finds you well.")
	assert.Contains(t, body, "challenges with managing multiple international vendors.")
	assert.NotContains(t, body, "series c funding")
	assert.NotContains(t, body, b.GlobalFootprint)
}

func TestPainPointFallbacks(t *testing.T) {
	b := types.AccountBrief{
		CompanyName:      "Acme",
		PainPoints:       []string{"Nothing relevant here"},
		PriorityContacts: []types.Contact{{Name: "Max", Title: "CEO", Persona: types.PersonaExecutive}},
	}
	body := New().Compose(b, types.EmailGenerationOptions{MaxEmailsPerContact: 1, Personalize: true})[0].Emails[0].Body
	assert.Contains(t, body, "has been expanding your global operations recently")
	assert.Contains(t, body, "challenges with barriers to international expansion.")
	assert.Contains(t, body, "streamline your global operations in multiple countries.")
}

var claimsRE = regexp.MustCompile(`Reduce compliance risks in (\d+) countries\n- Achieve (\d+)% cost savings`)

func TestCaseStudyClaimRanges(t *testing.T) {
	c := New()
	b := fullBrief()
	for i := 0; i < 200; i++ {
		e := c.Compose(b, types.EmailGenerationOptions{MaxEmailsPerContact: 2})[0].Emails[1]
		m := claimsRE.FindStringSubmatch(e.Body)
		require.NotNil(t, m, e.Body)
		countries, _ := strconv.Atoi(m[1])
		savings, _ := strconv.Atoi(m[2])
		assert.GreaterOrEqual(t, countries, MinClaimCountries)
		assert.LessOrEqual(t, countries, MaxClaimCountries)
		assert.GreaterOrEqual(t, savings, MinClaimSavings)
		assert.LessOrEqual(t, savings, MaxClaimSavings)
	}
}

func TestCaseStudySeedReproducible(t *testing.T) {
	opts := types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 2, Personalize: true}
	a := New(WithSeed(42)).Compose(fullBrief(), opts)
	b := New(WithSeed(42)).Compose(fullBrief(), opts)
	assert.Equal(t, a, b)
}

func TestCaseStudyEmail(t *testing.T) {
	e := New(WithSeed(9)).Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 2, Personalize: true})[0].Emails[1]
	assert.Equal(t, "How TechDynamics solved managing challenges", e.Subject)
	assert.Contains(t, e.Body, "TechDynamics was facing similar challenges with managing global benefits and compensation")
	assert.Contains(t, e.Body, "- Simplified global HR operations with local expertise\n")
	assert.Contains(t, e.Body, "Given Acme's focus on entity-free expansion,")

	b := fullBrief()
	b.SuggestedCaseStudy = ""
	b.RecommendedOutreachAngles = nil
	e = New(WithSeed(9)).Compose(b, types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 2, Personalize: true})[0].Emails[1]
	assert.Equal(t, "How companies like yours solved managing challenges", e.Subject)
	assert.Contains(t, e.Body, "One of our clients in your industry was facing")
	assert.Contains(t, e.Body, "Given Acme's focus on global growth,")
}

func TestObjectionHandlingEmail(t *testing.T) {
	seqs := New().Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 3, Personalize: true})
	wantSubject := []string{"hr", "talent", "finance", "operations", "executive"}
	wantFirst := []string{"Employee Experience", "Speed of Hiring", "Cost Predictability", "System Integration", "Strategic Focus"}
	for i, seq := range seqs {
		e := seq.Emails[2]
		assert.Equal(t, "Addressing common "+wantSubject[i]+" concerns about global employment platforms", e.Subject)
		assert.Contains(t, e.Body, "1. **"+wantFirst[i]+"**: ")
		assert.Contains(t, e.Body, "\n3. **")
		assert.Contains(t, e.Body, "for companies like TechDynamics, and specifically how we could help Acme with entity-free expansion.")
	}
}

func TestValueAddEmail(t *testing.T) {
	seqs := New().Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 4, Personalize: false})
	wantSubject := []string{"HR", "TALENT", "FINANCE", "OPERATIONS", "EXECUTIVE"}
	wantTitle := []string{
		"Global HR Compliance Handbook",
		"Global Talent Acquisition Playbook",
		"Global Employment Cost Analysis Tool",
		"Global Operations Standardization Guide",
		"Executive Guide to Global Growth Strategy",
	}
	for i, seq := range seqs {
		e := seq.Emails[3]
		assert.Equal(t, "Resource: "+wantSubject[i]+" Guide to Global Employment", e.Subject)
		assert.Contains(t, e.Body, `Our "`+wantTitle[i]+`"`)
		assert.Contains(t, e.Body, "for your specific situation.")
		assert.NotContains(t, e.Body, "offices in 12 countries")
	}
}

func TestRelationshipEmail(t *testing.T) {
	personal := New().Compose(fullBrief(), types.EmailGenerationOptions{IncludeSubjects: true, MaxEmailsPerContact: 5, Personalize: true})[2].Emails[4]
	assert.Equal(t, "Next steps for Acme and Remote.com", personal.Subject)
	assert.Contains(t, personal.Body, "Based on your offices in 12 countries and focus on entity-free expansion,")
	assert.Contains(t, personal.Body, "- Transparent, predictable global employment costs\n- Global Employment Platform\n\n")

	generic := New().Compose(fullBrief(), types.EmailGenerationOptions{MaxEmailsPerContact: 5})[2].Emails[4]
	assert.Contains(t, generic.Body, "- Transparent, predictable global employment costs\n- Consolidated invoicing in your preferred currency\n\n")
}

func TestComposeRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithMetrics(metrics.New(reg)))
	c.Compose(fullBrief(), types.EmailGenerationOptions{MaxEmailsPerContact: 2})

	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != "outreach_engine_emails_generated_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 10.0, total)
}
