// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

func TestFrameworkComplete(t *testing.T) {
	for _, p := range types.Personas {
		a, ok := Framework[p]
		assert.True(t, ok, "missing framework entry for %s", p)
		assert.Equal(t, p, a.Type)
		assert.Len(t, a.Motivations, 5)
		assert.Len(t, a.PainPoints, 5)
		assert.Len(t, a.ValueProps, 5)
		assert.NotEmpty(t, a.CommunicationStyle)

		assert.Len(t, Objections[p], 3, "objections for %s", p)
		assert.Len(t, Resources[p].Bullets, 3, "resource bullets for %s", p)
		assert.NotEmpty(t, Resources[p].Title)
	}
}

func TestLookupFallsBackToExecutive(t *testing.T) {
	assert.Equal(t, types.PersonaExecutive, Attributes("BOGUS").Type)
	assert.Equal(t, Objections[types.PersonaExecutive], ObjectionsFor(""))
	assert.Equal(t, Resources[types.PersonaExecutive], ResourceFor("BOGUS"))
	assert.Equal(t, types.PersonaFinance, Attributes(types.PersonaFinance).Type)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		entry string
		want  types.PersonaType
	}{
		{"Chief People Officer", "", types.PersonaHRPeopleOps},
		{"VP of Talent Acquisition", "", types.PersonaHRPeopleOps},
		{"Head of Recruiting", "", types.PersonaTalentAcquisition},
		{"CFO", "", types.PersonaFinance},
		{"Payroll Manager", "", types.PersonaFinance},
		{"COO", "", types.PersonaOperations},
		{"Director of Business Process", "", types.PersonaOperations},
		{"CEO", "", types.PersonaExecutive},
		{"Co-Founder", "", types.PersonaExecutive},
		{"Software Engineer", "", types.PersonaExecutive},
		{"hr generalist", "", types.PersonaHRPeopleOps},
		{"CEO", "Robert Patel, CEO [HR]", types.PersonaHRPeopleOps},
		{"Chief People Officer", "Sarah Johnson, Chief People Officer [finance]", types.PersonaFinance},
		{"CFO", "David Rodriguez, CFO (https://www.linkedin.com/in/d) [Operations]", types.PersonaOperations},
		{"CFO", "David Rodriguez, CFO [SALES]", types.PersonaFinance},
	}
	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.entry, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title, tt.entry))
		})
	}
}

func TestTagAndStrip(t *testing.T) {
	p, ok := Tag("Amanda Kim, COO [OPERATIONS]")
	assert.True(t, ok)
	assert.Equal(t, types.PersonaOperations, p)

	_, ok = Tag("Amanda Kim, COO")
	assert.False(t, ok)

	assert.Equal(t, "COO ", StripTags("COO [Operations]"))
}
